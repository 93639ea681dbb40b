package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/cli/config"
	"github.com/secmon-lab/argus/pkg/service/notify"
	"github.com/secmon-lab/argus/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdGenerate() *cli.Command {
	var (
		reportCfg config.Report
		storeCfg  config.TicketStore
		slackCfg  config.Slack
	)

	flags := joinFlags(
		reportCfg.Flags(),
		storeCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "generate",
		Usage: "Generate the incident report artifact",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting report generation",
				slog.Any("report", reportCfg),
				slog.Any("store", storeCfg),
				slog.Any("slack", slackCfg),
			)

			catalog, err := reportCfg.ConfigureCatalog()
			if err != nil {
				return err
			}

			store, err := storeCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			opts := []usecase.ReportOption{}
			if slackClient := slackCfg.ConfigureOptional(logger); slackClient != nil {
				notifier, err := notify.New(slackClient, slackCfg.Channel)
				if err != nil {
					return goerr.Wrap(err, "failed to configure notifier")
				}
				opts = append(opts, usecase.WithNotifier(notifier))
			}

			uc := usecase.NewReport(store, catalog, opts...)
			if _, err := uc.Generate(ctx, reportCfg.ToRequest()); err != nil {
				return err
			}

			return nil
		},
	}
}
