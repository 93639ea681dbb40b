// Package report builds the self-contained incident report artifact. It
// turns incidents and their relationship summaries into rows, applies the
// requested filters and ordering, and assembles a single HTML document with
// all styling, labels, and client behavior inlined.
package report

import (
	"time"

	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"github.com/secmon-lab/argus/pkg/service/i18n"
)

// Row pairs an incident with its resolved relationship summary. One Row
// becomes one master row plus one detail row in the artifact.
type Row struct {
	Incident  *model.Incident
	Relations model.RelationSummary
}

// Renderer produces the HTML artifact for a single language. All labels come
// from the localizer it was built with, so a Renderer never emits a blank
// where a label belongs.
type Renderer struct {
	loc   *i18n.Localizer
	clock func() time.Time
}

// RendererOption is a functional option for configuring Renderer
type RendererOption func(*Renderer)

// WithClock sets the clock used for the generation timestamp
func WithClock(clock func() time.Time) RendererOption {
	return func(r *Renderer) {
		r.clock = clock
	}
}

// NewRenderer creates a Renderer bound to lang. The catalog is checked up
// front so a missing label fails here, before any output file exists.
func NewRenderer(catalog *i18n.Catalog, lang types.LanguageTag, opts ...RendererOption) (*Renderer, error) {
	loc, err := catalog.Localizer(lang)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		loc:   loc,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Language returns the language the renderer emits labels in
func (r *Renderer) Language() types.LanguageTag {
	return r.loc.Lang()
}
