package view

import (
	"context"
	"fmt"
	"time"

	"github.com/oyasar/staffdir/internal/model"
	"github.com/oyasar/staffdir/internal/service"
	"github.com/oyasar/staffdir/internal/store"
	"github.com/oyasar/staffdir/internal/validate"
)

// FormController drives the add/edit form: it holds the in-progress
// candidate and its per-field errors, and gates submission on the
// validation engine.
type FormController struct {
	store   *store.Store
	actions *service.Employee
	now     func() time.Time

	candidate model.Employee
	errors    validate.Errors
	isEdit    bool
}

// NewFormController creates a controller in add mode.
func NewFormController(s *store.Store, actions *service.Employee) *FormController {
	return &FormController{
		store:   s,
		actions: actions,
		now:     time.Now,
		errors:  validate.Errors{},
	}
}

// WithClock overrides the time source, used by tests.
func (c *FormController) WithClock(now func() time.Time) *FormController {
	c.now = now
	return c
}

// Edit switches the form to edit mode, loading the record with the
// given id as the candidate.
func (c *FormController) Edit(candidate model.Employee) {
	c.candidate = candidate
	c.isEdit = true
	c.errors = validate.Errors{}
}

// Candidate returns the in-progress record.
func (c *FormController) Candidate() model.Employee {
	return c.candidate
}

// Errors returns the current per-field error mapping.
func (c *FormController) Errors() validate.Errors {
	return c.errors
}

// HandleInput applies a single field edit, re-validating just that
// field: a failing check sets its error, a passing one clears it.
func (c *FormController) HandleInput(field validate.FieldName, value string) {
	switch field {
	case validate.FieldFirstName:
		c.candidate.FirstName = value
	case validate.FieldLastName:
		c.candidate.LastName = value
	case validate.FieldEmail:
		c.candidate.Email = value
	case validate.FieldPhoneNumber:
		c.candidate.PhoneNumber = value
	case validate.FieldDateOfBirth:
		c.candidate.DateOfBirth = value
	case validate.FieldDateOfEmployment:
		c.candidate.DateOfEmployment = value
	case validate.FieldDepartment:
		c.candidate.Department = model.Department(value)
	case validate.FieldPosition:
		c.candidate.Position = model.Position(value)
	}

	if kind := validate.Field(field, value, c.now()); kind != "" {
		c.errors[field] = kind
	} else {
		delete(c.errors, field)
	}
}

// Submit runs full-form validation, including the cross-record
// duplicate checks, and on success routes to the add or update action.
// The returned mapping is non-empty when submission was blocked.
func (c *FormController) Submit(ctx context.Context) (validate.Errors, error) {
	errs := validate.Form(c.candidate, c.store.State().Employees, c.isEdit, c.now())
	if len(errs) > 0 {
		c.errors = errs
		return errs, nil
	}

	var err error
	if c.isEdit {
		_, err = c.actions.Update(ctx, c.candidate)
	} else {
		_, err = c.actions.Add(ctx, c.candidate)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	c.errors = validate.Errors{}
	return nil, nil
}
