package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oyasar/staffdir/internal/logger"
	"github.com/oyasar/staffdir/internal/model"
	"github.com/oyasar/staffdir/internal/store"
)

// Employee is the action layer: the only writer of the store. It owns
// the generated fields (id, createdAt, updatedAt) and never validates
// candidates itself; forms run the validation engine before calling in.
type Employee struct {
	store  *store.Store
	logger *logger.Logger
	now    func() time.Time
}

func NewEmployee(s *store.Store, l *logger.Logger) *Employee {
	return &Employee{
		store:  s,
		logger: l,
		now:    time.Now,
	}
}

// WithClock overrides the time source, used by tests.
func (s *Employee) WithClock(now func() time.Time) *Employee {
	s.now = now
	return s
}

// Add assigns a fresh id and timestamps to the candidate and prepends
// it to the collection, so the newest record is always first.
func (s *Employee) Add(ctx context.Context, candidate model.Employee) (model.Employee, error) {
	now := s.now()
	candidate.ID = uuid.New()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	state := s.store.State()
	employees := append([]model.Employee{candidate}, state.Employees...)

	if err := s.store.Apply(ctx, model.StatePatch{Employees: &employees}); err != nil {
		return model.Employee{}, fmt.Errorf("failed to add employee: %w", err)
	}

	s.logger.Debug("employee added", "id", candidate.ID)
	return candidate, nil
}

// Update replaces the record with candidate.ID in place, keeping its
// position in the collection and its CreatedAt, and refreshing
// UpdatedAt. Unknown ids return model.ErrNotFound.
func (s *Employee) Update(ctx context.Context, candidate model.Employee) (model.Employee, error) {
	state := s.store.State()

	idx := -1
	for i, emp := range state.Employees {
		if emp.ID == candidate.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.Employee{}, model.ErrNotFound
	}

	candidate.CreatedAt = state.Employees[idx].CreatedAt
	candidate.UpdatedAt = s.now()

	employees := state.Employees
	employees[idx] = candidate

	if err := s.store.Apply(ctx, model.StatePatch{Employees: &employees}); err != nil {
		return model.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	s.logger.Debug("employee updated", "id", candidate.ID)
	return candidate, nil
}

// Delete removes the record with the given id. Unknown ids return
// model.ErrNotFound.
func (s *Employee) Delete(ctx context.Context, id uuid.UUID) error {
	state := s.store.State()

	employees := make([]model.Employee, 0, len(state.Employees))
	found := false
	for _, emp := range state.Employees {
		if emp.ID == id {
			found = true
			continue
		}
		employees = append(employees, emp)
	}
	if !found {
		return model.ErrNotFound
	}

	if err := s.store.Apply(ctx, model.StatePatch{Employees: &employees}); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	s.logger.Debug("employee deleted", "id", id)
	return nil
}

// Get looks up a record by id.
func (s *Employee) Get(id uuid.UUID) (model.Employee, error) {
	for _, emp := range s.store.State().Employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return model.Employee{}, model.ErrNotFound
}

// SetViewMode updates the persisted view-mode preference only.
func (s *Employee) SetViewMode(ctx context.Context, mode model.ViewMode) error {
	if err := s.store.Apply(ctx, model.StatePatch{ViewMode: &mode}); err != nil {
		return fmt.Errorf("failed to set view mode: %w", err)
	}
	return nil
}
