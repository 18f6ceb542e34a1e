package query

import (
	"github.com/google/uuid"

	"github.com/oyasar/staffdir/internal/model"
)

// Selection tracks the ids checked in the list view. Selection is
// page-scoped: select-all operates on the currently visible slice only.
type Selection map[uuid.UUID]struct{}

// Toggle flips the selected state of a single id.
func (s Selection) Toggle(id uuid.UUID) {
	if _, ok := s[id]; ok {
		delete(s, id)
	} else {
		s[id] = struct{}{}
	}
}

// Contains reports whether id is selected.
func (s Selection) Contains(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// AllSelected reports whether every record of the visible page is in
// the selection. An empty page is never considered fully selected.
func AllSelected(s Selection, page []model.Employee) bool {
	if len(page) == 0 {
		return false
	}
	for _, emp := range page {
		if !s.Contains(emp.ID) {
			return false
		}
	}
	return true
}

// ToggleAll implements the page-scoped select-all toggle: when the
// visible page is fully selected the selection is cleared, otherwise it
// is replaced by exactly the ids of the visible page.
func ToggleAll(s Selection, page []model.Employee) Selection {
	if AllSelected(s, page) {
		return Selection{}
	}
	next := Selection{}
	for _, emp := range page {
		next[emp.ID] = struct{}{}
	}
	return next
}
