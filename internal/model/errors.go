package model

import "errors"

var (
	// ErrNotFound is returned when a lookup or mutation names an id
	// that is not in the collection.
	ErrNotFound = errors.New("not found")
)
