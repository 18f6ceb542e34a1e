package view

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/oyasar/staffdir/internal/logger"
	"github.com/oyasar/staffdir/internal/model"
	"github.com/oyasar/staffdir/internal/query"
	"github.com/oyasar/staffdir/internal/service"
	"github.com/oyasar/staffdir/internal/store"
)

// FilterType names the filter a filter-change intent targets.
type FilterType string

const (
	FilterSearchQuery FilterType = "searchQuery"
	FilterDepartment  FilterType = "department"
	FilterPosition    FilterType = "position"
)

// ListController owns the render-local view state of the employee list
// and translates each view intent into exactly one action-layer call or
// one local view-state update. It never holds an authoritative copy of
// the collection; the visible slice is derived on demand.
type ListController struct {
	store   *store.Store
	actions *service.Employee
	logger  *logger.Logger

	searchQuery   string
	filters       model.Filters
	sortField     model.SortField
	sortDirection model.SortDirection
	currentPage   int
	itemsPerPage  int
	viewMode      model.ViewMode
	selected      query.Selection
	pendingDelete *model.Employee

	unsubscribe func()
}

// NewListController builds a controller subscribed to the store; the
// view-mode preference mirrors the store on every change.
func NewListController(s *store.Store, actions *service.Employee, l *logger.Logger) *ListController {
	c := &ListController{
		store:         s,
		actions:       actions,
		logger:        l,
		sortDirection: model.SortAsc,
		currentPage:   1,
		itemsPerPage:  query.PageSize,
		viewMode:      s.State().ViewMode,
		selected:      query.Selection{},
	}
	c.unsubscribe = s.Subscribe(func(state model.State) {
		c.viewMode = state.ViewMode
	})
	return c
}

// Close removes the store subscription.
func (c *ListController) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Params assembles the current derivation parameters.
func (c *ListController) Params() query.Params {
	return query.Params{
		Search:        c.searchQuery,
		Filters:       c.filters,
		SortField:     c.sortField,
		SortDirection: c.sortDirection,
		Page:          c.currentPage,
		PerPage:       c.itemsPerPage,
	}
}

// VisibleEmployees derives the paginated slice the view renders.
func (c *ListController) VisibleEmployees() []model.Employee {
	return query.Visible(c.store.State().Employees, c.Params())
}

// FilteredCount reports the record count after filtering, before
// pagination; the pagination control sizes itself from it.
func (c *ListController) FilteredCount() int {
	return len(query.Filter(c.store.State().Employees, c.searchQuery, c.filters))
}

// ViewMode returns the current layout preference.
func (c *ListController) ViewMode() model.ViewMode {
	return c.viewMode
}

// Selected reports whether the record is checked in the list.
func (c *ListController) Selected(id uuid.UUID) bool {
	return c.selected.Contains(id)
}

// HandleFilterChange applies a filter-change intent. Any change resets
// the window back to the first page.
func (c *ListController) HandleFilterChange(t FilterType, value string) error {
	switch t {
	case FilterSearchQuery:
		c.searchQuery = value
	case FilterDepartment:
		c.filters.Department = model.Department(value)
	case FilterPosition:
		c.filters.Position = model.Position(value)
	default:
		return fmt.Errorf("unknown filter type: %s", t)
	}
	c.currentPage = 1
	return nil
}

// HandlePageChange applies a page-change intent.
func (c *ListController) HandlePageChange(page int) {
	if page < 1 {
		page = 1
	}
	c.currentPage = page
}

// HandleSort toggles direction when the active field is clicked again
// and otherwise switches to the new field ascending.
func (c *ListController) HandleSort(field model.SortField) {
	if c.sortField == field {
		if c.sortDirection == model.SortAsc {
			c.sortDirection = model.SortDesc
		} else {
			c.sortDirection = model.SortAsc
		}
		return
	}
	c.sortField = field
	c.sortDirection = model.SortAsc
}

// ToggleEmployee flips one record's selection.
func (c *ListController) ToggleEmployee(id uuid.UUID) {
	c.selected.Toggle(id)
}

// ToggleAll applies the page-scoped select-all toggle.
func (c *ListController) ToggleAll() {
	c.selected = query.ToggleAll(c.selected, c.VisibleEmployees())
}

// AllSelected reports whether the visible page is fully selected.
func (c *ListController) AllSelected() bool {
	return query.AllSelected(c.selected, c.VisibleEmployees())
}

// HandleViewModeChange forwards the layout switch to the action layer.
func (c *ListController) HandleViewModeChange(ctx context.Context, mode model.ViewMode) error {
	return c.actions.SetViewMode(ctx, mode)
}

// HandleEdit resolves an edit-employee intent to the record the form
// should load.
func (c *ListController) HandleEdit(id uuid.UUID) (model.Employee, error) {
	return c.actions.Get(id)
}

// RequestDelete stages a record for the confirmation dialog.
func (c *ListController) RequestDelete(emp model.Employee) {
	c.pendingDelete = &emp
}

// PendingDelete returns the record staged for deletion, if any.
func (c *ListController) PendingDelete() *model.Employee {
	return c.pendingDelete
}

// CancelDelete drops the staged record.
func (c *ListController) CancelDelete() {
	c.pendingDelete = nil
}

// ConfirmDelete performs the staged deletion. A record that vanished
// in the meantime is treated as already deleted.
func (c *ListController) ConfirmDelete(ctx context.Context) error {
	if c.pendingDelete == nil {
		return nil
	}
	id := c.pendingDelete.ID
	c.pendingDelete = nil

	err := c.actions.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		c.logger.Warn("delete targeted a missing record", "id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	c.selected = query.Selection{}
	return nil
}
