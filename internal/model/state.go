package model

// ViewMode selects the list rendering layout.
type ViewMode string

const (
	ViewModeTable ViewMode = "table"
	ViewModeList  ViewMode = "list"
)

// SortDirection orders a sorted column.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortField names a sortable projection of an employee. The zero value
// means no sort: the collection's insertion order is preserved.
type SortField string

const (
	SortByNone             SortField = ""
	SortByName             SortField = "name"
	SortByDateOfEmployment SortField = "dateOfEmployment"
	SortByDateOfBirth      SortField = "dateOfBirth"
	SortByEmail            SortField = "email"
	SortByPhoneNumber      SortField = "phoneNumber"
	SortByDepartment       SortField = "department"
	SortByPosition         SortField = "position"
)

// Filters holds the exact-match list filters. An empty value disables
// the corresponding filter.
type Filters struct {
	Department Department
	Position   Position
}

// State is the canonical store snapshot: the employee collection plus
// the view preferences persisted alongside it.
type State struct {
	Employees []Employee `json:"employees"`
	ViewMode  ViewMode   `json:"viewMode"`
}

// StatePatch is a typed partial update applied to State. Nil fields are
// left untouched; set fields replace the current value wholesale.
type StatePatch struct {
	Employees *[]Employee
	ViewMode  *ViewMode
}
