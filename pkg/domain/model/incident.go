package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

// Incident represents one open work item the way the ticketing store reported
// it. Display fields arrive already localized for the language the store was
// queried with.
type Incident struct {
	ID             types.IncidentID // Display-stable work item identifier (e.g., "IR4711")
	Title          string           // Short description
	CreatedAt      time.Time        // Creation timestamp
	Status         string           // Status display label; drives the badge color
	Classification string           // Classification display label, empty when unset
	TierQueue      string           // Support group display label, empty when unset
}

// NewIncident creates a new Incident instance
func NewIncident(id types.IncidentID, title string, createdAt time.Time, status string) (*Incident, error) {
	inc := &Incident{
		ID:        id,
		Title:     title,
		CreatedAt: createdAt,
		Status:    status,
	}
	if err := inc.Validate(); err != nil {
		return nil, err
	}
	return inc, nil
}

// Validate checks the fields every report row depends on. Only ID and
// CreatedAt are required; Title, Status, Classification and TierQueue may
// be empty and render as empty cells.
func (x *Incident) Validate() error {
	if x.ID == "" {
		return goerr.New("incident ID is required")
	}
	if x.CreatedAt.IsZero() {
		return goerr.New("incident creation time is required", goerr.V("id", x.ID))
	}
	return nil
}

// Clone returns a deep copy
func (x *Incident) Clone() *Incident {
	if x == nil {
		return nil
	}
	c := *x
	return &c
}
