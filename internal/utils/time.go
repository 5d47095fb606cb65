package utils

import (
	"math"
	"time"

	"github.com/julianstephens/readlit/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in the local timezone.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// FormatDate formats a time as a date string in the standard format.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Midnight truncates a time to midnight in its own location, so two times on
// the same calendar day compare equal.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole-day span between two dates, inclusive of both
// endpoints. Order of arguments does not matter.
func DaysBetween(a, b time.Time) int {
	a, b = Midnight(a), Midnight(b)
	if a.After(b) {
		a, b = b, a
	}
	// Round to absorb DST days that are not exactly 24 hours long
	return int(math.Round(b.Sub(a).Hours()/24)) + 1
}

// ValidDateFormat checks if the string matches the standard date format.
func ValidDateFormat(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}
