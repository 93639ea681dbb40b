package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

func TestSummarizeRelations(t *testing.T) {
	testCases := []struct {
		name     string
		edges    []model.RelationEdge
		expected model.RelationSummary
	}{
		{
			name:     "No edges",
			edges:    nil,
			expected: model.RelationSummary{},
		},
		{
			name: "One edge of each kind",
			edges: []model.RelationEdge{
				{Kind: types.RelationAffectedUser, Target: "Anna Lind"},
				{Kind: types.RelationAssignedTo, Target: "Erik Berg"},
				{Kind: types.RelationRelatesTo, Target: "IR100"},
			},
			expected: model.RelationSummary{
				AffectedUser: "Anna Lind",
				AssignedTo:   "Erik Berg",
				RelatedCount: 1,
			},
		},
		{
			name: "First edge wins per kind",
			edges: []model.RelationEdge{
				{Kind: types.RelationAffectedUser, Target: "Anna Lind"},
				{Kind: types.RelationAffectedUser, Target: "Maja Ek"},
				{Kind: types.RelationAssignedTo, Target: "Erik Berg"},
				{Kind: types.RelationAssignedTo, Target: "Oskar Holm"},
			},
			expected: model.RelationSummary{
				AffectedUser: "Anna Lind",
				AssignedTo:   "Erik Berg",
			},
		},
		{
			name: "First edge wins even with empty target",
			edges: []model.RelationEdge{
				{Kind: types.RelationAffectedUser, Target: ""},
				{Kind: types.RelationAffectedUser, Target: "Maja Ek"},
			},
			expected: model.RelationSummary{},
		},
		{
			name: "Related edges only count",
			edges: []model.RelationEdge{
				{Kind: types.RelationRelatesTo, Target: "IR1"},
				{Kind: types.RelationRelatesTo, Target: "IR2"},
				{Kind: types.RelationRelatesTo, Target: "IR3"},
			},
			expected: model.RelationSummary{RelatedCount: 3},
		},
		{
			name: "Unknown kinds are ignored",
			edges: []model.RelationEdge{
				{Kind: types.RelationKind("duplicateOf"), Target: "IR9"},
				{Kind: types.RelationAssignedTo, Target: "Erik Berg"},
			},
			expected: model.RelationSummary{AssignedTo: "Erik Berg"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, tc.expected, model.SummarizeRelations(tc.edges))
		})
	}
}
