package types

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// IncidentID represents a work item identifier as the ticketing store
// displays it. The value is opaque: some stores hand out plain numbers,
// others prefixed strings such as "IR4711".
type IncidentID string

// String returns the string representation
func (id IncidentID) String() string {
	return string(id)
}

// Compare orders two identifiers for report sorting. Identifiers that parse
// as integers compare numerically and sort before every non-numeric
// identifier; the rest compare in byte order. The class split keeps the
// order transitive when a report mixes both shapes.
func (id IncidentID) Compare(other IncidentID) int {
	a, errA := strconv.Atoi(string(id))
	b, errB := strconv.Atoi(string(other))
	switch {
	case errA == nil && errB == nil:
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(string(id), string(other))
	}
}

// ReportID represents one generation run. It correlates log records with the
// artifact the run produced.
type ReportID string

// String returns the string representation
func (id ReportID) String() string {
	return string(id)
}

// NewReportID creates a new ReportID
func NewReportID() ReportID {
	return ReportID(uuid.New().String())
}

// EnumerationID represents a ticketing store enumeration element, e.g. an
// incident status or classification value whose display name is localized
// by the store.
type EnumerationID string

// String returns the string representation
func (id EnumerationID) String() string {
	return string(id)
}
