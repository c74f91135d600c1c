package collections

import "errors"

// Sentinel errors returned by the collection helpers.
var (
	// ErrNilCollection is returned when an operation requires an input
	// collection but the collection is absent.
	ErrNilCollection = errors.New("collections: collection is nil")
)
