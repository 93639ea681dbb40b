package interfaces

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackGateway is the slice of the Slack Web API the notification service
// uses. *slack.Client satisfies it directly.
type SlackGateway interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}
