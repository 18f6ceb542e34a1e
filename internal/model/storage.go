package model

import "context"

// Persisted-storage keys. The state blob carries the collection and the
// view mode together; the view mode and UI language are additionally
// kept under their own keys.
const (
	KeyEmployeeState     = "employeeState"
	KeyEmployeeViewMode  = "employeeViewMode"
	KeyPreferredLanguage = "preferredLanguage"
)

// KeyValueStore defines the device-local string storage the core
// persists into.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}
