package query

import (
	"sort"
	"strings"
	"time"

	"github.com/oyasar/staffdir/internal/model"
)

// PageSize is the fixed number of records per page.
const PageSize = 10

// Params carries everything the pipeline needs to derive the visible
// slice from the full collection.
type Params struct {
	Search        string
	Filters       model.Filters
	SortField     model.SortField
	SortDirection model.SortDirection
	Page          int
	PerPage       int
}

// Visible runs the full filter, sort, paginate pipeline. It is pure:
// the input slice is never mutated and identical inputs always produce
// identical output.
func Visible(employees []model.Employee, p Params) []model.Employee {
	return Paginate(Sort(Filter(employees, p.Search, p.Filters), p.SortField, p.SortDirection), p.Page, p.PerPage)
}

// Filter keeps records matching the free-text search AND both exact
// filters. The search term matches case-insensitive substrings of the
// first name, last name and email; the phone number is matched as a
// literal substring without digit normalization.
func Filter(employees []model.Employee, search string, filters model.Filters) []model.Employee {
	searchLower := strings.ToLower(search)

	out := make([]model.Employee, 0, len(employees))
	for _, emp := range employees {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(emp.FirstName), searchLower) ||
			strings.Contains(strings.ToLower(emp.LastName), searchLower) ||
			strings.Contains(strings.ToLower(emp.Email), searchLower) ||
			strings.Contains(emp.PhoneNumber, searchLower)

		matchesDepartment := filters.Department == "" || emp.Department == filters.Department
		matchesPosition := filters.Position == "" || emp.Position == filters.Position

		if matchesSearch && matchesDepartment && matchesPosition {
			out = append(out, emp)
		}
	}

	return out
}

// Sort orders a copy of employees by the projection of field. The zero
// field preserves the input order. Equal keys have no guaranteed
// relative order.
func Sort(employees []model.Employee, field model.SortField, direction model.SortDirection) []model.Employee {
	out := make([]model.Employee, len(employees))
	copy(out, employees)

	if field == model.SortByNone {
		return out
	}

	desc := direction == model.SortDesc
	sort.Slice(out, func(i, j int) bool {
		if desc {
			return sortLess(out[j], out[i], field)
		}
		return sortLess(out[i], out[j], field)
	})

	return out
}

func sortLess(a, b model.Employee, field model.SortField) bool {
	switch field {
	case model.SortByDateOfEmployment, model.SortByDateOfBirth:
		return dateValue(a, field).Before(dateValue(b, field))
	default:
		return stringValue(a, field) < stringValue(b, field)
	}
}

func dateValue(emp model.Employee, field model.SortField) time.Time {
	raw := emp.DateOfEmployment
	if field == model.SortByDateOfBirth {
		raw = emp.DateOfBirth
	}
	t, _ := time.Parse(model.DateLayout, raw)
	return t
}

func stringValue(emp model.Employee, field model.SortField) string {
	switch field {
	case model.SortByName:
		return strings.ToLower(emp.FirstName + " " + emp.LastName)
	case model.SortByEmail:
		return strings.ToLower(emp.Email)
	case model.SortByPhoneNumber:
		return strings.ToLower(emp.PhoneNumber)
	case model.SortByDepartment:
		return strings.ToLower(string(emp.Department))
	case model.SortByPosition:
		return strings.ToLower(string(emp.Position))
	default:
		return ""
	}
}

// Paginate slices the half-open window [(page-1)*perPage, page*perPage)
// out of employees. Pages past the end yield an empty slice.
func Paginate(employees []model.Employee, page, perPage int) []model.Employee {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = PageSize
	}

	start := (page - 1) * perPage
	if start >= len(employees) {
		return []model.Employee{}
	}
	end := start + perPage
	if end > len(employees) {
		end = len(employees)
	}

	return employees[start:end]
}

// TotalPages reports how many pages the filtered collection spans.
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		perPage = PageSize
	}
	if total == 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}
