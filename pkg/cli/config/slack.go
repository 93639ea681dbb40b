package config

import (
	"log/slog"

	"github.com/slack-go/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack notification configuration
type Slack struct {
	OAuthToken string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for API access",
			Category:    "Slack",
			Sources:     cli.EnvVars("ARGUS_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID for report notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("ARGUS_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
	}
}

// ConfigureOptional creates a Slack client if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) *slack.Client {
	if s.OAuthToken != "" && s.Channel == "" {
		logger.Warn("Slack token set without a channel, report notifications disabled")
		return nil
	}
	if !s.IsConfigured() {
		logger.Debug("Slack not configured, report notifications disabled")
		return nil
	}

	logger.Info("Configuring Slack client", "channel", s.Channel)
	return slack.New(s.OAuthToken)
}

// IsConfigured checks if Slack notification is fully configured
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.Channel != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.Channel),
	)
}
