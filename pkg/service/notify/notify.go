// Package notify posts a completion summary to Slack after a report run.
package notify

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/interfaces"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Notifier posts report summaries to one Slack channel
type Notifier struct {
	client    interfaces.SlackGateway
	channelID string
}

// New creates a Notifier bound to a channel
func New(client interfaces.SlackGateway, channelID string) (*Notifier, error) {
	if client == nil {
		return nil, goerr.New("slack client is required")
	}
	if channelID == "" {
		return nil, goerr.New("slack channel ID is required")
	}
	return &Notifier{
		client:    client,
		channelID: channelID,
	}, nil
}

// NotifyReport posts a summary of one finished report run
func (n *Notifier) NotifyReport(ctx context.Context, result *model.ReportResult) error {
	if result == nil {
		return goerr.New("report result is required")
	}

	fallback := fmt.Sprintf("Incident report generated: %d rows, %s", result.RowCount, result.OutputPath)
	if _, _, err := n.client.PostMessageContext(ctx, n.channelID,
		slack.MsgOptionBlocks(buildReportBlocks(result)...),
		slack.MsgOptionText(fallback, false),
	); err != nil {
		return goerr.Wrap(err, "failed to post report notification",
			goerr.V("channelID", n.channelID),
			goerr.V("reportID", result.ID))
	}

	return nil
}

// buildReportBlocks builds the Block Kit summary of a report run
func buildReportBlocks(result *model.ReportResult) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(
				slack.PlainTextType,
				"Incident report generated",
				false,
				false,
			),
		),
	}

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(
			slack.MarkdownType,
			fmt.Sprintf("*Rows:*\n%d", result.RowCount),
			false,
			false,
		),
		slack.NewTextBlockObject(
			slack.MarkdownType,
			fmt.Sprintf("*Language:*\n%s", result.Language),
			false,
			false,
		),
		slack.NewTextBlockObject(
			slack.MarkdownType,
			fmt.Sprintf("*Output:*\n`%s`", result.OutputPath),
			false,
			false,
		),
		slack.NewTextBlockObject(
			slack.MarkdownType,
			fmt.Sprintf("*Generated:*\n%s", result.GeneratedAt.Format("2006-01-02 15:04")),
			false,
			false,
		),
	}
	blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))

	if result.SkippedCount > 0 {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(
				slack.MarkdownType,
				fmt.Sprintf("%d of %d incidents skipped after relationship lookup failures (report `%s`)",
					result.SkippedCount, result.FetchedCount, result.ID),
				false,
				false,
			),
		))
	}

	return blocks
}
