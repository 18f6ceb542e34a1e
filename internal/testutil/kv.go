package testutil

import (
	"context"

	"github.com/oyasar/staffdir/internal/model"
)

// MemoryKV is an in-memory KeyValueStore for tests.
type MemoryKV struct {
	Data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{Data: map[string]string{}}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	value, ok := m.Data[key]
	if !ok {
		return "", model.ErrNotFound
	}
	return value, nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value string) error {
	m.Data[key] = value
	return nil
}
