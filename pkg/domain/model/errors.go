package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	// ErrUnknownLabelKey marks a label lookup for a key or language the
	// catalog does not carry. It is a configuration defect and aborts the
	// run before anything is rendered.
	ErrUnknownLabelKey = goerr.New("unknown label key")
)
