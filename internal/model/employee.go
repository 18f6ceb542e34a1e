package model

import (
	"time"

	"github.com/google/uuid"
)

// Employee represents a single directory record. Dates of birth and
// employment are kept in the YYYY-MM-DD form they are entered in;
// CreatedAt and UpdatedAt are owned by the action layer and never
// supplied by callers.
type Employee struct {
	ID               uuid.UUID  `json:"id"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	DateOfEmployment string     `json:"dateOfEmployment"`
	DateOfBirth      string     `json:"dateOfBirth"`
	PhoneNumber      string     `json:"phoneNumber"`
	Email            string     `json:"email"`
	Department       Department `json:"department"`
	Position         Position   `json:"position"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// Department enumerates the departments an employee can belong to.
type Department string

const (
	DepartmentAnalytics Department = "Analytics"
	DepartmentTech      Department = "Tech"
)

// Departments lists every valid department value.
func Departments() []Department {
	return []Department{DepartmentAnalytics, DepartmentTech}
}

// Position enumerates seniority levels.
type Position string

const (
	PositionJunior Position = "Junior"
	PositionMedior Position = "Medior"
	PositionSenior Position = "Senior"
)

// Positions lists every valid position value.
func Positions() []Position {
	return []Position{PositionJunior, PositionMedior, PositionSenior}
}

// DateLayout is the calendar-date form employee dates are stored in.
const DateLayout = "2006-01-02"
