package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"github.com/secmon-lab/argus/pkg/service/i18n"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Report holds report generation configuration
type Report struct {
	Output         string
	Title          string
	SortKey        string
	SortOrder      string
	Classification string
	TierQueue      string
	Lang           string
	LabelsFile     string
}

// Flags returns CLI flags for report configuration
func (r *Report) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Report output file path",
			Category:    "Report",
			Required:    true,
			Sources:     cli.EnvVars("ARGUS_OUTPUT"),
			Destination: &r.Output,
		},
		&cli.StringFlag{
			Name:        "title",
			Usage:       "Report heading (defaults to a localized heading)",
			Category:    "Report",
			Sources:     cli.EnvVars("ARGUS_TITLE"),
			Destination: &r.Title,
		},
		&cli.StringFlag{
			Name:        "sort-key",
			Usage:       "Row order field (id, createdDate, title)",
			Category:    "Report",
			Value:       string(types.DefaultSortKey),
			Sources:     cli.EnvVars("ARGUS_SORT_KEY"),
			Destination: &r.SortKey,
		},
		&cli.StringFlag{
			Name:        "sort-order",
			Usage:       "Row order direction (asc, desc)",
			Category:    "Report",
			Value:       string(types.DefaultSortOrder),
			Sources:     cli.EnvVars("ARGUS_SORT_ORDER"),
			Destination: &r.SortOrder,
		},
		&cli.StringFlag{
			Name:        "classification",
			Usage:       "Wildcard filter over the classification label (e.g. 'net*')",
			Category:    "Report",
			Sources:     cli.EnvVars("ARGUS_CLASSIFICATION"),
			Destination: &r.Classification,
		},
		&cli.StringFlag{
			Name:        "tier-queue",
			Usage:       "Wildcard filter over the support group label",
			Category:    "Report",
			Sources:     cli.EnvVars("ARGUS_TIER_QUEUE"),
			Destination: &r.TierQueue,
		},
		&cli.StringFlag{
			Name:        "lang",
			Usage:       "Report language (sv, en)",
			Category:    "Report",
			Value:       string(types.DefaultLanguage),
			Sources:     cli.EnvVars("ARGUS_LANG"),
			Destination: &r.Lang,
		},
		&cli.StringFlag{
			Name:        "labels-file",
			Usage:       "YAML file overriding report labels (key -> language -> label)",
			Category:    "Report",
			Sources:     cli.EnvVars("ARGUS_LABELS_FILE"),
			Destination: &r.LabelsFile,
		},
	}
}

// ToRequest converts the configuration into a report request
func (r *Report) ToRequest() *model.ReportRequest {
	return &model.ReportRequest{
		OutputPath:           r.Output,
		Title:                r.Title,
		SortKey:              types.SortKey(r.SortKey),
		SortOrder:            types.SortOrder(r.SortOrder),
		ClassificationFilter: r.Classification,
		TierQueueFilter:      r.TierQueue,
		Language:             types.LanguageTag(r.Lang),
	}
}

// ConfigureCatalog builds the label catalog, applying the overrides file when
// one is configured.
func (r *Report) ConfigureCatalog() (*i18n.Catalog, error) {
	catalog := i18n.New()
	if r.LabelsFile == "" {
		return catalog, nil
	}

	data, err := os.ReadFile(r.LabelsFile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read labels file", goerr.V("path", r.LabelsFile))
	}

	var overrides map[string]map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, goerr.Wrap(err, "failed to parse labels file", goerr.V("path", r.LabelsFile))
	}

	if err := catalog.Merge(overrides); err != nil {
		return nil, goerr.Wrap(err, "invalid labels file", goerr.V("path", r.LabelsFile))
	}

	return catalog, nil
}

// LogValue returns structured log value
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("output", r.Output),
		slog.String("title", r.Title),
		slog.String("sortKey", r.SortKey),
		slog.String("sortOrder", r.SortOrder),
		slog.String("classification", r.Classification),
		slog.String("tierQueue", r.TierQueue),
		slog.String("lang", r.Lang),
		slog.String("labelsFile", r.LabelsFile),
	)
}
