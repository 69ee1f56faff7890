package validator

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(id string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(id))
}

// IsUUID accepts any UUID version in a form Postgres can parse.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidMonth reports whether m is a calendar month number.
func IsValidMonth(m int) bool {
	return m >= 1 && m <= 12
}

// IsValidYear bounds payroll years to something a person could be paid in.
func IsValidYear(y int) bool {
	return y >= 2000 && y <= 9999
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// ErrInvalidMonth is returned for a month outside 1-12.
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// ParseYearMonth parses year and month query values. A bad month is reported
// as ErrInvalidMonth; year problems come back as ValidationErrors.
func ParseYearMonth(yearStr, monthStr string) (int, int, error) {
	month, err := strconv.Atoi(strings.TrimSpace(monthStr))
	if err != nil || !IsValidMonth(month) {
		return 0, 0, ErrInvalidMonth
	}

	year, err := strconv.Atoi(strings.TrimSpace(yearStr))
	if err != nil {
		return 0, 0, ValidationErrors{{Field: "year", Message: "year must be an integer"}}
	}
	if !IsValidYear(year) {
		return 0, 0, ValidationErrors{{Field: "year", Message: "year is out of range"}}
	}

	return year, month, nil
}
