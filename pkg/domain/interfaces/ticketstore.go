package interfaces

import (
	"context"

	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

// TicketStore defines the read boundary towards the external ticketing
// system. Implementations resolve enumeration identifiers to display labels
// for the requested language before returning, so everything downstream
// works on plain display text.
type TicketStore interface {
	// ListActiveIncidents returns every work item whose stored state is
	// active, localized for lang. The order is the store's natural order;
	// the report pipeline re-sorts.
	ListActiveIncidents(ctx context.Context, lang types.LanguageTag) ([]*model.Incident, error)

	// ListRelationEdges returns the relationship edges of one incident in
	// the store's return order. That order decides which edge wins when
	// only the first of a kind is kept. Unknown incidents yield an empty
	// slice, not an error.
	ListRelationEdges(ctx context.Context, id types.IncidentID) ([]model.RelationEdge, error)

	// Close closes the store connection
	Close() error
}
