package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/interfaces"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	incidentsCollection    = "incidents"
	enumerationsCollection = "enumerations"
	relationsCollection    = "relations"

	// Field names match the Go struct field names; the client writes them
	// without tags.
	fieldState      = "State"
	fieldIncidentID = "IncidentID"

	// stateActive marks the work items the report is about
	stateActive = "Active"
)

// incidentDoc is the wire shape of one work item document
type incidentDoc struct {
	ID               string
	Title            string
	CreatedAt        time.Time
	State            string
	StatusID         string
	ClassificationID string
	TierQueueID      string
}

// enumerationDoc carries the localized display names of one enumeration
// element, keyed by language tag.
type enumerationDoc struct {
	DisplayNames map[string]string
}

// relationDoc is one relationship edge. Seq keeps the authoritative order
// without requiring a composite index; edges are sorted in memory.
type relationDoc struct {
	IncidentID string
	Kind       string
	Target     string
	Seq        int
}

// Firestore implements TicketStore against a Firestore database
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore ticket store
func NewFirestore(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Probe the connection so bad credentials fail before any report work
	// starts. An empty collection is fine.
	_, err = client.Collection(incidentsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection probe returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore ticket store initialized",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{client: client}, nil
}

// ListActiveIncidents queries work items in the active state and resolves
// their enumeration references to display labels for the requested language.
func (f *Firestore) ListActiveIncidents(ctx context.Context, lang types.LanguageTag) ([]*model.Incident, error) {
	if err := lang.Validate(); err != nil {
		return nil, err
	}

	iter := f.client.Collection(incidentsCollection).
		Where(fieldState, "==", stateActive).
		Documents(ctx)
	defer iter.Stop()

	// Enumeration documents repeat across incidents; resolve each at most once
	enumCache := make(map[types.EnumerationID]map[string]string)

	var incidents []*model.Incident
	for {
		snapshot, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate incidents")
		}

		var doc incidentDoc
		if err := snapshot.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode incident",
				goerr.V("doc", snapshot.Ref.ID))
		}

		statusLabel, err := f.displayName(ctx, enumCache, types.EnumerationID(doc.StatusID), lang)
		if err != nil {
			return nil, err
		}
		classLabel, err := f.displayName(ctx, enumCache, types.EnumerationID(doc.ClassificationID), lang)
		if err != nil {
			return nil, err
		}
		tierLabel, err := f.displayName(ctx, enumCache, types.EnumerationID(doc.TierQueueID), lang)
		if err != nil {
			return nil, err
		}

		incident, err := model.NewIncident(types.IncidentID(doc.ID), doc.Title, doc.CreatedAt, statusLabel)
		if err != nil {
			return nil, goerr.Wrap(err, "malformed incident record",
				goerr.V("doc", snapshot.Ref.ID))
		}
		incident.Classification = classLabel
		incident.TierQueue = tierLabel

		incidents = append(incidents, incident)
	}

	return incidents, nil
}

// displayName resolves one enumeration reference. Unset references resolve
// to the empty string; an enumeration document without a label for the
// requested language does too, with a debug record for data hygiene.
func (f *Firestore) displayName(ctx context.Context, cache map[types.EnumerationID]map[string]string, id types.EnumerationID, lang types.LanguageTag) (string, error) {
	if id == "" {
		return "", nil
	}

	names, ok := cache[id]
	if !ok {
		snapshot, err := f.client.Collection(enumerationsCollection).Doc(id.String()).Get(ctx)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				ctxlog.From(ctx).Debug("enumeration document not found", "enumeration", id)
				cache[id] = map[string]string{}
				return "", nil
			}
			return "", goerr.Wrap(err, "failed to get enumeration",
				goerr.V("enumeration", id))
		}

		var doc enumerationDoc
		if err := snapshot.DataTo(&doc); err != nil {
			return "", goerr.Wrap(err, "failed to decode enumeration",
				goerr.V("enumeration", id))
		}
		names = doc.DisplayNames
		cache[id] = names
	}

	label, ok := names[lang.String()]
	if !ok {
		ctxlog.From(ctx).Debug("enumeration has no label for language",
			"enumeration", id,
			"language", lang,
		)
		return "", nil
	}
	return label, nil
}

// ListRelationEdges returns the edges of one incident ordered by their
// sequence number. The query avoids OrderBy so no composite index is
// required; sorting happens in memory.
func (f *Firestore) ListRelationEdges(ctx context.Context, id types.IncidentID) ([]model.RelationEdge, error) {
	if id == "" {
		return nil, goerr.New("incident ID is empty")
	}

	iter := f.client.Collection(relationsCollection).
		Where(fieldIncidentID, "==", id.String()).
		Documents(ctx)
	defer iter.Stop()

	var docs []relationDoc
	for {
		snapshot, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate relations",
				goerr.V("incidentID", id))
		}

		var doc relationDoc
		if err := snapshot.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode relation",
				goerr.V("doc", snapshot.Ref.ID))
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Seq < docs[j].Seq
	})

	edges := make([]model.RelationEdge, 0, len(docs))
	for _, doc := range docs {
		edges = append(edges, model.RelationEdge{
			Kind:   types.RelationKind(doc.Kind),
			Target: doc.Target,
		})
	}

	return edges, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

var _ interfaces.TicketStore = (*Firestore)(nil) // Compile-time interface check
