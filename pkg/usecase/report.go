package usecase

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/interfaces"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"github.com/secmon-lab/argus/pkg/service/i18n"
	"github.com/secmon-lab/argus/pkg/service/report"
	"github.com/secmon-lab/argus/pkg/utils/apperr"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency caps parallel relationship lookups per run
const defaultConcurrency = 4

// ReportNotifier receives the result of a finished run. Notification failures
// are logged, never fatal; the artifact on disk is the primary outcome.
type ReportNotifier interface {
	NotifyReport(ctx context.Context, result *model.ReportResult) error
}

// Report generates incident report artifacts
type Report struct {
	store       interfaces.TicketStore
	catalog     *i18n.Catalog
	notifier    ReportNotifier
	clock       func() time.Time
	concurrency int
}

// ReportOption is a functional option for configuring Report
type ReportOption func(*Report)

// WithNotifier adds a notification target for finished runs
func WithNotifier(notifier ReportNotifier) ReportOption {
	return func(uc *Report) {
		uc.notifier = notifier
	}
}

// WithClock sets the clock used for generation timestamps
func WithClock(clock func() time.Time) ReportOption {
	return func(uc *Report) {
		uc.clock = clock
	}
}

// WithConcurrency caps parallel relationship lookups
func WithConcurrency(n int) ReportOption {
	return func(uc *Report) {
		if n > 0 {
			uc.concurrency = n
		}
	}
}

// NewReport creates a Report use case
func NewReport(store interfaces.TicketStore, catalog *i18n.Catalog, opts ...ReportOption) *Report {
	uc := &Report{
		store:       store,
		catalog:     catalog,
		clock:       time.Now,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Generate runs one report: fetch the open incidents, resolve their
// relationships, filter and sort, render, and write the artifact. A store
// fetch failure aborts the run; a failing relationship lookup only drops that
// incident.
func (uc *Report) Generate(ctx context.Context, req *model.ReportRequest) (*model.ReportResult, error) {
	if req == nil {
		return nil, goerr.New("report request is required")
	}
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid report request")
	}

	reportID := types.NewReportID()
	logger := ctxlog.From(ctx).With("reportID", reportID)
	ctx = ctxlog.With(ctx, logger)

	// Build the renderer first so an incomplete label catalog fails the run
	// before anything is fetched or written.
	renderer, err := report.NewRenderer(uc.catalog, req.Language, report.WithClock(uc.clock))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to prepare renderer")
	}

	incidents, err := uc.store.ListActiveIncidents(ctx, req.Language)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list active incidents")
	}
	logger.Info("Fetched active incidents", "count", len(incidents))

	rows, skipped, err := uc.resolveRelations(ctx, incidents)
	if err != nil {
		return nil, err
	}

	rows, err = report.FilterRows(rows, report.Filter{
		Classification: req.ClassificationFilter,
		TierQueue:      req.TierQueueFilter,
	})
	if err != nil {
		return nil, err
	}
	if err := report.SortRows(rows, req.SortKey, req.SortOrder); err != nil {
		return nil, err
	}

	doc, err := renderer.RenderDocument(rows, req.Title, reportID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render report")
	}

	if err := uc.writeArtifact(req.OutputPath, doc); err != nil {
		return nil, err
	}

	result := &model.ReportResult{
		ID:           reportID,
		OutputPath:   req.OutputPath,
		Language:     req.Language,
		RowCount:     len(rows),
		FetchedCount: len(incidents),
		SkippedCount: skipped,
		GeneratedAt:  uc.clock(),
	}
	logger.Info("Report generated",
		"output", result.OutputPath,
		"rows", result.RowCount,
		"fetched", result.FetchedCount,
		"skipped", result.SkippedCount,
	)

	if uc.notifier != nil {
		if err := uc.notifier.NotifyReport(ctx, result); err != nil {
			apperr.Handle(ctx, goerr.Wrap(err, "failed to notify report completion"))
		}
	}

	return result, nil
}

// resolveRelations looks up the relationship summary of every incident with
// bounded parallelism. Incidents whose lookup fails are logged and dropped;
// context cancellation is the only failure that aborts the whole run. Input
// order is preserved.
func (uc *Report) resolveRelations(ctx context.Context, incidents []*model.Incident) ([]report.Row, int, error) {
	logger := ctxlog.From(ctx)

	resolved := make([]*report.Row, len(incidents))
	var eg errgroup.Group
	eg.SetLimit(uc.concurrency)

	for i, inc := range incidents {
		eg.Go(func() error {
			edges, err := uc.store.ListRelationEdges(ctx, inc.ID)
			if err != nil {
				if ctx.Err() != nil {
					return goerr.Wrap(err, "relation lookup canceled", goerr.V("incidentID", inc.ID))
				}
				logger.Warn("Skipping incident after relation lookup failure",
					"incidentID", inc.ID,
					"error", err,
				)
				return nil
			}
			resolved[i] = &report.Row{
				Incident:  inc,
				Relations: model.SummarizeRelations(edges),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}

	rows := make([]report.Row, 0, len(incidents))
	for _, row := range resolved {
		if row != nil {
			rows = append(rows, *row)
		}
	}
	return rows, len(incidents) - len(rows), nil
}

// writeArtifact writes the document next to its destination and renames it
// into place, so a failing run never leaves a truncated file at the output
// path.
func (uc *Report) writeArtifact(path, doc string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", dir))
	}

	tmp, err := os.CreateTemp(dir, ".argus-report-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary report file", goerr.V("dir", dir))
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.WriteString(doc); err != nil {
		_ = tmp.Close()
		return goerr.Wrap(err, "failed to write report", goerr.V("path", path))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close report file", goerr.V("path", path))
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return goerr.Wrap(err, "failed to set report file permissions", goerr.V("path", path))
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return goerr.Wrap(err, "failed to move report into place", goerr.V("path", path))
	}
	return nil
}
