package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/oyasar/staffdir/internal/model"
)

// Listener observes every applied state change. It receives the
// post-merge snapshot.
type Listener func(model.State)

// Store is the single owner of the employee collection and the view
// preferences persisted with it. It is constructed explicitly and
// passed by reference to whoever owns the UI tree; there is no ambient
// singleton. Every successful Apply writes the serialized state back
// to the key-value storage.
type Store struct {
	kv model.KeyValueStore

	mu        sync.Mutex
	state     model.State
	listeners []*listenerEntry
	nextID    int
}

type listenerEntry struct {
	id int
	fn Listener
}

// New creates a Store, loading the persisted state blob if one exists.
// A missing blob initializes an empty collection with the table view.
func New(ctx context.Context, kv model.KeyValueStore) (*Store, error) {
	s := &Store{
		kv: kv,
		state: model.State{
			Employees: []model.Employee{},
			ViewMode:  model.ViewModeTable,
		},
	}

	raw, err := kv.Get(ctx, model.KeyEmployeeState)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("failed to load persisted state: %w", err)
	}
	if err == nil {
		var loaded model.State
		if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
			return nil, fmt.Errorf("failed to decode persisted state: %w", err)
		}
		if loaded.Employees == nil {
			loaded.Employees = []model.Employee{}
		}
		if loaded.ViewMode == "" {
			loaded.ViewMode = model.ViewModeTable
		}
		s.state = loaded
	}

	// The view mode is also persisted standalone; when present it wins
	// over the value embedded in the blob.
	mode, err := kv.Get(ctx, model.KeyEmployeeViewMode)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("failed to load view mode: %w", err)
	}
	if mode != "" {
		s.state.ViewMode = model.ViewMode(mode)
	}

	return s, nil
}

// State returns a snapshot of the current state. The employee slice is
// copied so callers can never mutate the authoritative collection.
func (s *Store) State() model.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) snapshot() model.State {
	employees := make([]model.Employee, len(s.state.Employees))
	copy(employees, s.state.Employees)
	return model.State{
		Employees: employees,
		ViewMode:  s.state.ViewMode,
	}
}

// Apply merges a typed patch into the state, notifies subscribers in
// subscription order with the post-merge snapshot, then persists the
// new state. Persistence failures propagate to the caller; there is no
// retry.
func (s *Store) Apply(ctx context.Context, patch model.StatePatch) error {
	s.mu.Lock()
	if patch.Employees != nil {
		employees := make([]model.Employee, len(*patch.Employees))
		copy(employees, *patch.Employees)
		s.state.Employees = employees
	}
	if patch.ViewMode != nil {
		s.state.ViewMode = *patch.ViewMode
	}
	snap := s.snapshot()

	// Copy the listener list so a listener unsubscribing itself during
	// notification does not disturb delivery to the rest of the round.
	entries := make([]*listenerEntry, len(s.listeners))
	copy(entries, s.listeners)
	s.mu.Unlock()

	for _, e := range entries {
		e.fn(snap)
	}

	return s.persist(ctx, snap)
}

// Subscribe registers a listener invoked on every Apply. The returned
// function removes the listener; other subscriptions are unaffected.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	entry := &listenerEntry{id: s.nextID, fn: fn}
	s.listeners = append(s.listeners, entry)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, e := range s.listeners {
			if e.id == entry.id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) persist(ctx context.Context, state model.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := s.kv.Set(ctx, model.KeyEmployeeState, string(raw)); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	if err := s.kv.Set(ctx, model.KeyEmployeeViewMode, string(state.ViewMode)); err != nil {
		return fmt.Errorf("failed to persist view mode: %w", err)
	}
	return nil
}
