package types

// RelationKind classifies a relationship edge hanging off an incident
type RelationKind string

const (
	// RelationRelatesTo links an incident to another work item; only the
	// number of such edges is reported.
	RelationRelatesTo RelationKind = "relatesTo"
	// RelationAffectedUser points at the user the incident affects.
	RelationAffectedUser RelationKind = "affectedUser"
	// RelationAssignedTo points at the user working the incident.
	RelationAssignedTo RelationKind = "assignedTo"
)

// String returns the string representation
func (k RelationKind) String() string {
	return string(k)
}

// IsValid checks if the relation kind is one of the known classes
func (k RelationKind) IsValid() bool {
	switch k {
	case RelationRelatesTo, RelationAffectedUser, RelationAssignedTo:
		return true
	default:
		return false
	}
}
