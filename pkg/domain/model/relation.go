package model

import "github.com/secmon-lab/argus/pkg/domain/types"

// RelationEdge is one relationship hanging off an incident, reduced to what
// the report needs: the kind of the edge and the display name of its target.
type RelationEdge struct {
	Kind   types.RelationKind // Edge class
	Target string             // Display name of the related object
}

// RelationSummary is the per-incident digest of relationship edges
type RelationSummary struct {
	AffectedUser string // Display name from the first affected-user edge
	AssignedTo   string // Display name from the first assigned-to edge
	RelatedCount int    // Number of relates-to edges
}

// SummarizeRelations folds edges into a RelationSummary in a single pass.
// Edge order is the store's return order and is authoritative: the first
// affected-user and the first assigned-to edge win even when their target
// display name is empty. Edges of unknown kinds are ignored.
func SummarizeRelations(edges []RelationEdge) RelationSummary {
	var summary RelationSummary
	var haveAffected, haveAssigned bool

	for _, edge := range edges {
		switch edge.Kind {
		case types.RelationAffectedUser:
			if !haveAffected {
				summary.AffectedUser = edge.Target
				haveAffected = true
			}
		case types.RelationAssignedTo:
			if !haveAssigned {
				summary.AssignedTo = edge.Target
				haveAssigned = true
			}
		case types.RelationRelatesTo:
			summary.RelatedCount++
		}
	}

	return summary
}
