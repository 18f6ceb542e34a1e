package validate

import (
	"regexp"
	"strings"
	"time"

	"github.com/oyasar/staffdir/internal/model"
)

// ErrorKind classifies a validation failure independently of any
// display text. The view layer resolves kinds to translated messages.
type ErrorKind string

const (
	ErrRequired      ErrorKind = "required"
	ErrInvalidFormat ErrorKind = "invalid"
	ErrInvalidName   ErrorKind = "invalidName"
	ErrUnderage      ErrorKind = "underage"
	ErrFutureDate    ErrorKind = "future"
	ErrAlreadyExists ErrorKind = "exists"
)

// FieldName identifies a validated employee field.
type FieldName string

const (
	FieldFirstName        FieldName = "firstName"
	FieldLastName         FieldName = "lastName"
	FieldEmail            FieldName = "email"
	FieldPhoneNumber      FieldName = "phoneNumber"
	FieldDateOfBirth      FieldName = "dateOfBirth"
	FieldDateOfEmployment FieldName = "dateOfEmployment"
	FieldDepartment       FieldName = "department"
	FieldPosition         FieldName = "position"
)

// Errors maps each failing field to the single error kind reported for
// it. An empty map means the candidate passed.
type Errors map[FieldName]ErrorKind

var (
	// Letters in any script plus hyphens, apostrophes and spaces.
	nameRegex  = regexp.MustCompile(`^[\p{L}\s'-]+$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitRegex = regexp.MustCompile(`\D`)
)

// phoneDigitCount is the full digit length of a formatted number:
// the two-digit country code plus ten subscriber digits.
const phoneDigitCount = 12

// Field checks a single field value and returns the first failing
// check: required, then format, then semantic (age, future date). An
// empty ErrorKind means the value is valid.
func Field(name FieldName, value string, now time.Time) ErrorKind {
	switch name {
	case FieldFirstName, FieldLastName:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return ErrRequired
		}
		if !nameRegex.MatchString(trimmed) {
			return ErrInvalidName
		}
		return ""

	case FieldEmail:
		if strings.TrimSpace(value) == "" {
			return ErrRequired
		}
		if !emailRegex.MatchString(value) {
			return ErrInvalidFormat
		}
		return ""

	case FieldPhoneNumber:
		if strings.TrimSpace(value) == "" {
			return ErrRequired
		}
		if len(DigitsOnly(value)) != phoneDigitCount {
			return ErrInvalidFormat
		}
		return ""

	case FieldDateOfBirth:
		if value == "" {
			return ErrRequired
		}
		birthDate, err := time.Parse(model.DateLayout, value)
		if err != nil {
			return ErrInvalidFormat
		}
		if birthDate.After(now.AddDate(-18, 0, 0)) {
			return ErrUnderage
		}
		return ""

	case FieldDateOfEmployment:
		if value == "" {
			return ErrRequired
		}
		employmentDate, err := time.Parse(model.DateLayout, value)
		if err != nil {
			return ErrInvalidFormat
		}
		if employmentDate.After(now) {
			return ErrFutureDate
		}
		return ""

	case FieldDepartment:
		if value == "" {
			return ErrRequired
		}
		for _, d := range model.Departments() {
			if value == string(d) {
				return ""
			}
		}
		return ErrInvalidFormat

	case FieldPosition:
		if value == "" {
			return ErrRequired
		}
		for _, p := range model.Positions() {
			if value == string(p) {
				return ""
			}
		}
		return ErrInvalidFormat

	default:
		return ""
	}
}

// Form validates every required field of the candidate, then checks the
// cross-record duplicate constraints against existing: email compared
// exactly as stored, phone compared by digits only. When isEdit is true
// the candidate's own record is excluded from the duplicate scan. The
// duplicate check is not short-circuited by a prior syntactic error on
// the same field; its result overwrites it.
func Form(candidate model.Employee, existing []model.Employee, isEdit bool, now time.Time) Errors {
	errs := Errors{}

	fields := map[FieldName]string{
		FieldFirstName:        candidate.FirstName,
		FieldLastName:         candidate.LastName,
		FieldEmail:            candidate.Email,
		FieldPhoneNumber:      candidate.PhoneNumber,
		FieldDateOfBirth:      candidate.DateOfBirth,
		FieldDateOfEmployment: candidate.DateOfEmployment,
		FieldDepartment:       string(candidate.Department),
		FieldPosition:         string(candidate.Position),
	}
	for name, value := range fields {
		if kind := Field(name, value, now); kind != "" {
			errs[name] = kind
		}
	}

	candidatePhone := DigitsOnly(candidate.PhoneNumber)
	for _, emp := range existing {
		if isEdit && emp.ID == candidate.ID {
			continue
		}
		if emp.Email == candidate.Email {
			errs[FieldEmail] = ErrAlreadyExists
		}
		if DigitsOnly(emp.PhoneNumber) == candidatePhone {
			errs[FieldPhoneNumber] = ErrAlreadyExists
		}
	}

	return errs
}

// DigitsOnly strips every non-digit character from s.
func DigitsOnly(s string) string {
	return digitRegex.ReplaceAllString(s, "")
}

// FormatPhone renders twelve raw digits in the stored international
// form, e.g. "+(90) 532 123 45 67". Input that is not exactly twelve
// digits is returned unchanged.
func FormatPhone(s string) string {
	digits := DigitsOnly(s)
	if len(digits) != phoneDigitCount {
		return s
	}
	return "+(" + digits[:2] + ") " + digits[2:5] + " " + digits[5:8] + " " + digits[8:10] + " " + digits[10:12]
}
