package types

import "github.com/m-mizutani/goerr/v2"

// SortKey selects which incident field orders the report rows
type SortKey string

const (
	SortByID          SortKey = "id"
	SortByCreatedDate SortKey = "createdDate"
	SortByTitle       SortKey = "title"
)

// DefaultSortKey is applied when no sort key is requested
const DefaultSortKey = SortByCreatedDate

// String returns the string representation
func (k SortKey) String() string {
	return string(k)
}

// Validate checks if the sort key is one of the supported fields
func (k SortKey) Validate() error {
	switch k {
	case SortByID, SortByCreatedDate, SortByTitle:
		return nil
	default:
		return goerr.New("unsupported sort key", goerr.V("key", k))
	}
}

// SortOrder selects the direction of the report row ordering
type SortOrder string

const (
	OrderAscending  SortOrder = "asc"
	OrderDescending SortOrder = "desc"
)

// DefaultSortOrder is applied when no direction is requested
const DefaultSortOrder = OrderAscending

// String returns the string representation
func (o SortOrder) String() string {
	return string(o)
}

// Validate checks if the sort order is a supported direction
func (o SortOrder) Validate() error {
	switch o {
	case OrderAscending, OrderDescending:
		return nil
	default:
		return goerr.New("unsupported sort order", goerr.V("order", o))
	}
}
