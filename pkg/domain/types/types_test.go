package types_test

import (
	"sort"
	"testing"

	"github.com/secmon-lab/argus/pkg/domain/types"
)

func TestIncidentIDCompare(t *testing.T) {
	tests := []struct {
		name     string
		a        types.IncidentID
		b        types.IncidentID
		expected int
	}{
		{"Numeric less", "9", "10", -1},
		{"Numeric greater", "120", "21", 1},
		{"Numeric equal", "42", "42", 0},
		{"Lexicographic less", "IR10", "IR9", -1},
		{"Lexicographic greater", "IR9", "IR10", 1},
		{"Lexicographic equal", "IR42", "IR42", 0},
		{"Numeric before non-numeric", "12", "IR1", -1},
		{"Non-numeric after numeric", "IR1", "12", 1},
		{"Digit-led non-numeric after numeric", "1Z", "9", 1},
		{"Numeric before digit-led non-numeric", "10", "1Z", -1},
		{"Leading zeros compare numerically", "007", "8", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Compare(tt.b)
			if result != tt.expected {
				t.Errorf("IncidentID(%q).Compare(%q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestIncidentIDCompareMixedSet(t *testing.T) {
	ids := []types.IncidentID{"1Z", "IR2", "10", "9", "007"}
	sortIDs := func(s []types.IncidentID) {
		sort.SliceStable(s, func(i, j int) bool { return s[i].Compare(s[j]) < 0 })
	}

	sortIDs(ids)
	want := []types.IncidentID{"007", "9", "10", "1Z", "IR2"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("sorted[%d] = %q, want %q (got %v)", i, ids[i], want[i], ids)
		}
	}

	// Re-sorting an ordered set must not move anything.
	again := append([]types.IncidentID(nil), ids...)
	sortIDs(again)
	for i := range ids {
		if again[i] != ids[i] {
			t.Errorf("re-sort moved element %d: %q -> %q", i, ids[i], again[i])
		}
	}
}

func TestLanguageTagValidate(t *testing.T) {
	tests := []struct {
		name    string
		lang    types.LanguageTag
		wantErr bool
	}{
		{"Swedish", types.LangSwedish, false},
		{"English", types.LangEnglish, false},
		{"Well-formed but unsupported", types.LanguageTag("de"), true},
		{"Malformed", types.LanguageTag("not a tag"), true},
		{"Empty", types.LanguageTag(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lang.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("LanguageTag(%q).Validate() = %v, wantErr %v", tt.lang, err, tt.wantErr)
			}
		})
	}
}

func TestSortKeyValidate(t *testing.T) {
	tests := []struct {
		name    string
		key     types.SortKey
		wantErr bool
	}{
		{"Valid id", types.SortByID, false},
		{"Valid createdDate", types.SortByCreatedDate, false},
		{"Valid title", types.SortByTitle, false},
		{"Invalid empty", types.SortKey(""), true},
		{"Invalid case", types.SortKey("CreatedDate"), true},
		{"Invalid unknown", types.SortKey("status"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.key.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("SortKey(%q).Validate() = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

func TestSortOrderValidate(t *testing.T) {
	tests := []struct {
		name    string
		order   types.SortOrder
		wantErr bool
	}{
		{"Valid asc", types.OrderAscending, false},
		{"Valid desc", types.OrderDescending, false},
		{"Invalid empty", types.SortOrder(""), true},
		{"Invalid long form", types.SortOrder("ascending"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.order.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("SortOrder(%q).Validate() = %v, wantErr %v", tt.order, err, tt.wantErr)
			}
		})
	}
}

func TestRelationKindIsValid(t *testing.T) {
	tests := []struct {
		name     string
		kind     types.RelationKind
		expected bool
	}{
		{"Valid relatesTo", types.RelationRelatesTo, true},
		{"Valid affectedUser", types.RelationAffectedUser, true},
		{"Valid assignedTo", types.RelationAssignedTo, true},
		{"Invalid empty", types.RelationKind(""), false},
		{"Invalid mixed case", types.RelationKind("AffectedUser"), false},
		{"Invalid unknown", types.RelationKind("duplicateOf"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.kind.IsValid()
			if result != tt.expected {
				t.Errorf("RelationKind(%q).IsValid() = %v, want %v", tt.kind, result, tt.expected)
			}
		})
	}
}
