package repository

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// Seed is an offline dataset for the memory store. Its YAML layout mirrors
// the Firestore collections: enumerations keyed by enumeration id with
// per-language display names, incident documents referencing them, and
// relationship edges listed in authoritative order.
type Seed struct {
	Enumerations map[string]map[string]string `yaml:"enumerations"`
	Incidents    []SeedIncident               `yaml:"incidents"`
	Relations    []SeedRelation               `yaml:"relations"`
}

// SeedIncident is one work item document of a seed
type SeedIncident struct {
	ID             string    `yaml:"id"`
	Title          string    `yaml:"title"`
	CreatedAt      time.Time `yaml:"createdAt"`
	State          string    `yaml:"state"`
	Status         string    `yaml:"status"`         // enumeration id
	Classification string    `yaml:"classification"` // enumeration id, optional
	TierQueue      string    `yaml:"tierQueue"`      // enumeration id, optional
}

// SeedRelation is one relationship edge of a seed. Order within the file is
// the order the store returns, which decides first-edge-wins resolution.
type SeedRelation struct {
	IncidentID string `yaml:"incident"`
	Kind       string `yaml:"kind"`
	Target     string `yaml:"target"`
}

// Validate checks the seed for the defects a hand-written file typically
// has: duplicate or missing identifiers, edges pointing nowhere, relation
// kinds the report does not know.
func (s *Seed) Validate() error {
	ids := make(map[string]bool, len(s.Incidents))
	for i, inc := range s.Incidents {
		if inc.ID == "" {
			return goerr.New("seed incident without id", goerr.V("index", i))
		}
		if ids[inc.ID] {
			return goerr.New("duplicate seed incident id", goerr.V("id", inc.ID))
		}
		ids[inc.ID] = true

		if inc.CreatedAt.IsZero() {
			return goerr.New("seed incident without createdAt", goerr.V("id", inc.ID))
		}
		if inc.State == "" {
			return goerr.New("seed incident without state", goerr.V("id", inc.ID))
		}
	}

	for i, rel := range s.Relations {
		if !ids[rel.IncidentID] {
			return goerr.New("seed relation references unknown incident",
				goerr.V("index", i),
				goerr.V("incident", rel.IncidentID))
		}
		if !types.RelationKind(rel.Kind).IsValid() {
			return goerr.New("seed relation with unknown kind",
				goerr.V("index", i),
				goerr.V("kind", rel.Kind))
		}
	}

	return nil
}

// LoadSeedFile reads a YAML seed file into a fresh memory store
func LoadSeedFile(path string) (*Memory, error) {
	if path == "" {
		return nil, goerr.New("seed file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "seed file not found", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read seed file", goerr.V("path", path))
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse seed file", goerr.V("path", path))
	}

	store := NewMemory()
	if err := store.Load(seed); err != nil {
		return nil, goerr.Wrap(err, "invalid seed file", goerr.V("path", path))
	}

	return store, nil
}
