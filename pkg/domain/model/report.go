package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

// ReportRequest carries every knob of one report generation run
type ReportRequest struct {
	OutputPath           string            // Destination file path (required)
	Title                string            // Report heading; empty selects the localized default
	SortKey              types.SortKey     // Row ordering field
	SortOrder            types.SortOrder   // Row ordering direction
	ClassificationFilter string            // Wildcard pattern over the classification label, optional
	TierQueueFilter      string            // Wildcard pattern over the tier/queue label, optional
	Language             types.LanguageTag // Output language
}

// ApplyDefaults fills zero-valued knobs with their documented defaults:
// sort by creation date, ascending, Swedish output.
func (x *ReportRequest) ApplyDefaults() {
	if x.SortKey == "" {
		x.SortKey = types.DefaultSortKey
	}
	if x.SortOrder == "" {
		x.SortOrder = types.DefaultSortOrder
	}
	if x.Language == "" {
		x.Language = types.DefaultLanguage
	}
}

// Validate checks the request after defaults were applied
func (x *ReportRequest) Validate() error {
	if x.OutputPath == "" {
		return goerr.New("output path is required")
	}
	if err := x.SortKey.Validate(); err != nil {
		return err
	}
	if err := x.SortOrder.Validate(); err != nil {
		return err
	}
	if err := x.Language.Validate(); err != nil {
		return err
	}
	return nil
}

// ReportResult describes the artifact one generation run produced
type ReportResult struct {
	ID           types.ReportID    // Correlation ID of the run
	OutputPath   string            // Where the artifact was written
	Language     types.LanguageTag // Language the artifact was rendered in
	RowCount     int               // Rows rendered after filtering
	FetchedCount int               // Incidents returned by the store
	SkippedCount int               // Incidents dropped after relationship resolution failures
	GeneratedAt  time.Time         // Generation wall clock (minute precision in the artifact)
}
