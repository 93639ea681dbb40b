package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/interfaces"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

// Memory implements TicketStore with in-memory storage. It backs tests,
// demos and offline runs, optionally loaded from a YAML seed file that
// mirrors the Firestore collection layout.
type Memory struct {
	mu    sync.RWMutex
	enums map[types.EnumerationID]map[types.LanguageTag]string
	docs  []incidentDoc // insertion order is the store's natural order
	edges map[types.IncidentID][]model.RelationEdge
}

// NewMemory creates a new empty memory store
func NewMemory() *Memory {
	return &Memory{
		enums: make(map[types.EnumerationID]map[types.LanguageTag]string),
		edges: make(map[types.IncidentID][]model.RelationEdge),
	}
}

// Load replaces the store content with a seed. The seed is validated first;
// a partially broken seed never becomes visible.
func (m *Memory) Load(seed Seed) error {
	if err := seed.Validate(); err != nil {
		return err
	}

	enums := make(map[types.EnumerationID]map[types.LanguageTag]string, len(seed.Enumerations))
	for id, names := range seed.Enumerations {
		labels := make(map[types.LanguageTag]string, len(names))
		for lang, label := range names {
			labels[types.LanguageTag(lang)] = label
		}
		enums[types.EnumerationID(id)] = labels
	}

	docs := make([]incidentDoc, 0, len(seed.Incidents))
	for _, inc := range seed.Incidents {
		docs = append(docs, incidentDoc{
			ID:               inc.ID,
			Title:            inc.Title,
			CreatedAt:        inc.CreatedAt,
			State:            inc.State,
			StatusID:         inc.Status,
			ClassificationID: inc.Classification,
			TierQueueID:      inc.TierQueue,
		})
	}

	edges := make(map[types.IncidentID][]model.RelationEdge, len(seed.Relations))
	for _, rel := range seed.Relations {
		id := types.IncidentID(rel.IncidentID)
		edges[id] = append(edges[id], model.RelationEdge{
			Kind:   types.RelationKind(rel.Kind),
			Target: rel.Target,
		})
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.enums = enums
	m.docs = docs
	m.edges = edges
	return nil
}

// ListActiveIncidents returns incidents whose state is active, in insertion
// order, with enumeration references resolved for the requested language.
func (m *Memory) ListActiveIncidents(ctx context.Context, lang types.LanguageTag) ([]*model.Incident, error) {
	if err := lang.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	incidents := make([]*model.Incident, 0, len(m.docs))
	for _, doc := range m.docs {
		if doc.State != stateActive {
			continue
		}

		incident, err := model.NewIncident(
			types.IncidentID(doc.ID),
			doc.Title,
			doc.CreatedAt,
			m.displayName(types.EnumerationID(doc.StatusID), lang),
		)
		if err != nil {
			return nil, goerr.Wrap(err, "malformed incident record", goerr.V("id", doc.ID))
		}
		incident.Classification = m.displayName(types.EnumerationID(doc.ClassificationID), lang)
		incident.TierQueue = m.displayName(types.EnumerationID(doc.TierQueueID), lang)

		incidents = append(incidents, incident)
	}

	return incidents, nil
}

// displayName resolves an enumeration reference to its display label.
// Unset references and unknown enumerations resolve to the empty string.
func (m *Memory) displayName(id types.EnumerationID, lang types.LanguageTag) string {
	if id == "" {
		return ""
	}
	return m.enums[id][lang]
}

// ListRelationEdges returns the edges of one incident in insertion order
func (m *Memory) ListRelationEdges(ctx context.Context, id types.IncidentID) ([]model.RelationEdge, error) {
	if id == "" {
		return nil, goerr.New("incident ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	edges := m.edges[id]
	result := make([]model.RelationEdge, len(edges))
	copy(result, edges)
	return result, nil
}

// Close does nothing for the memory store
func (m *Memory) Close() error {
	return nil
}

// Clear drops all data (useful for testing)
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enums = make(map[types.EnumerationID]map[types.LanguageTag]string)
	m.docs = nil
	m.edges = make(map[types.IncidentID][]model.RelationEdge)
}

var _ interfaces.TicketStore = (*Memory)(nil) // Compile-time interface check
