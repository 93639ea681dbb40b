package report

import (
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

// Filter narrows rows by their classification and tier/queue labels.
// Patterns are case-insensitive wildcards where '*' matches any run of
// characters and '?' matches exactly one. An empty pattern keeps every row.
type Filter struct {
	Classification string
	TierQueue      string
}

// FilterRows returns the rows matching every non-empty pattern, in input
// order. A row whose field is empty never matches a non-empty pattern, not
// even "*".
func FilterRows(rows []Row, filter Filter) ([]Row, error) {
	matchClassification, err := compilePattern(filter.Classification)
	if err != nil {
		return nil, err
	}
	matchTierQueue, err := compilePattern(filter.TierQueue)
	if err != nil {
		return nil, err
	}

	matched := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.Incident == nil {
			continue
		}
		if !matchClassification(row.Incident.Classification) {
			continue
		}
		if !matchTierQueue(row.Incident.TierQueue) {
			continue
		}
		matched = append(matched, row)
	}

	return matched, nil
}

// compilePattern builds a case-insensitive matcher. Both the pattern and the
// candidate value are lowercased before matching so "net*" matches "Network".
func compilePattern(pattern string) (func(string) bool, error) {
	if pattern == "" {
		return func(string) bool { return true }, nil
	}

	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, goerr.Wrap(err, "invalid filter pattern", goerr.V("pattern", pattern))
	}

	return func(value string) bool {
		if value == "" {
			return false
		}
		return g.Match(strings.ToLower(value))
	}, nil
}

// SortRows orders rows in place by the requested key and direction. The sort
// is stable, so rows with equal keys keep their relative input order and
// sorting the same input again never reshuffles it. IDs compare numerically
// when both sides are integers and lexicographically otherwise.
func SortRows(rows []Row, key types.SortKey, order types.SortOrder) error {
	if err := key.Validate(); err != nil {
		return err
	}
	if err := order.Validate(); err != nil {
		return err
	}

	var less func(a, b Row) bool
	switch key {
	case types.SortByID:
		less = func(a, b Row) bool {
			return a.Incident.ID.Compare(b.Incident.ID) < 0
		}
	case types.SortByCreatedDate:
		less = func(a, b Row) bool {
			return a.Incident.CreatedAt.Before(b.Incident.CreatedAt)
		}
	case types.SortByTitle:
		less = func(a, b Row) bool {
			return a.Incident.Title < b.Incident.Title
		}
	default:
		return goerr.New("unsupported sort key", goerr.V("key", key))
	}

	ascending := less
	if order == types.OrderDescending {
		less = func(a, b Row) bool {
			return ascending(b, a)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return less(rows[i], rows[j])
	})

	return nil
}
