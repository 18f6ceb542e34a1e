package view

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyasar/staffdir/internal/model"
	"github.com/oyasar/staffdir/internal/service"
	"github.com/oyasar/staffdir/internal/store"
	"github.com/oyasar/staffdir/internal/testutil"
	"github.com/oyasar/staffdir/internal/validate"
)

func newFormFixture(t *testing.T) (*FormController, *store.Store) {
	t.Helper()
	s, err := store.New(context.Background(), testutil.NewMemoryKV())
	require.NoError(t, err)
	actions := service.NewEmployee(s, testutil.MakeNoopLogger())
	return NewFormController(s, actions), s
}

func fillValid(c *FormController) {
	c.HandleInput(validate.FieldFirstName, "Ayşe")
	c.HandleInput(validate.FieldLastName, "Kaya")
	c.HandleInput(validate.FieldEmail, "ayse@sourtimes.org")
	c.HandleInput(validate.FieldPhoneNumber, "+(90) 532 123 45 67")
	c.HandleInput(validate.FieldDateOfBirth, "1990-01-15")
	c.HandleInput(validate.FieldDateOfEmployment, "2022-03-01")
	c.HandleInput(validate.FieldDepartment, "Analytics")
	c.HandleInput(validate.FieldPosition, "Medior")
}

func TestHandleInput_SetsAndClearsFieldError(t *testing.T) {
	c, _ := newFormFixture(t)

	c.HandleInput(validate.FieldFirstName, "John123")
	assert.Equal(t, validate.ErrInvalidName, c.Errors()[validate.FieldFirstName])

	c.HandleInput(validate.FieldFirstName, "John")
	assert.NotContains(t, c.Errors(), validate.FieldFirstName)
}

func TestSubmit_BlocksOnValidationErrors(t *testing.T) {
	ctx := context.Background()
	c, s := newFormFixture(t)

	fillValid(c)
	c.HandleInput(validate.FieldEmail, "broken")

	errs, err := c.Submit(ctx)
	require.NoError(t, err)

	assert.Equal(t, validate.ErrInvalidFormat, errs[validate.FieldEmail])
	assert.Empty(t, s.State().Employees)
}

func TestSubmit_AddsEmployee(t *testing.T) {
	ctx := context.Background()
	c, s := newFormFixture(t)

	fillValid(c)
	errs, err := c.Submit(ctx)
	require.NoError(t, err)
	require.Empty(t, errs)

	employees := s.State().Employees
	require.Len(t, employees, 1)
	assert.Equal(t, "ayse@sourtimes.org", employees[0].Email)
	assert.NotZero(t, employees[0].ID)
}

func TestSubmit_RejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	c, s := newFormFixture(t)

	fillValid(c)
	_, err := c.Submit(ctx)
	require.NoError(t, err)

	second := NewFormController(s, service.NewEmployee(s, testutil.MakeNoopLogger()))
	fillValid(second)
	second.HandleInput(validate.FieldPhoneNumber, "+(90) 532 999 88 77")

	errs, err := second.Submit(ctx)
	require.NoError(t, err)

	assert.Equal(t, validate.ErrAlreadyExists, errs[validate.FieldEmail])
	assert.NotContains(t, errs, validate.FieldPhoneNumber)
	assert.Len(t, s.State().Employees, 1)
}

func TestSubmit_EditUpdatesExisting(t *testing.T) {
	ctx := context.Background()
	c, s := newFormFixture(t)

	fillValid(c)
	_, err := c.Submit(ctx)
	require.NoError(t, err)
	created := s.State().Employees[0]

	edit := NewFormController(s, service.NewEmployee(s, testutil.MakeNoopLogger()))
	edit.Edit(created)
	edit.HandleInput(validate.FieldFirstName, "Fatma")

	errs, err := edit.Submit(ctx)
	require.NoError(t, err)
	require.Empty(t, errs)

	employees := s.State().Employees
	require.Len(t, employees, 1)
	assert.Equal(t, "Fatma", employees[0].FirstName)
	assert.Equal(t, created.ID, employees[0].ID)
	assert.Equal(t, created.CreatedAt, employees[0].CreatedAt)
}

func TestSubmit_UnderageAndFutureDates(t *testing.T) {
	ctx := context.Background()
	c, _ := newFormFixture(t)

	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	c.WithClock(func() time.Time { return now })

	fillValid(c)
	c.HandleInput(validate.FieldDateOfBirth, now.AddDate(-17, 0, 0).Format(model.DateLayout))
	c.HandleInput(validate.FieldDateOfEmployment, now.AddDate(0, 0, 1).Format(model.DateLayout))

	errs, err := c.Submit(ctx)
	require.NoError(t, err)

	assert.Equal(t, validate.ErrUnderage, errs[validate.FieldDateOfBirth])
	assert.Equal(t, validate.ErrFutureDate, errs[validate.FieldDateOfEmployment])
}
