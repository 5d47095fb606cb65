package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/readlit/internal/constants"
)

// Error is the single recoverable error kind raised by the tracker engine for
// malformed input. The message is suitable for direct display.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Errorf creates a validation error from a format string.
func Errorf(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool {
	_, ok := err.(*Error)
	return ok
}

// BookInput checks the add-book fields. Title and author must be non-empty
// after trimming, and totalPages must be a positive integer.
func BookInput(title, author string, totalPages int) error {
	if strings.TrimSpace(title) == "" {
		return Errorf("title must not be empty")
	}
	if strings.TrimSpace(author) == "" {
		return Errorf("author must not be empty")
	}
	if totalPages <= 0 {
		return Errorf("total pages must be a positive integer, got %d", totalPages)
	}
	return nil
}

// SessionInput checks the log-session numeric fields.
func SessionInput(pagesRead, minutes int) error {
	if pagesRead <= 0 {
		return Errorf("pages read must be a positive integer, got %d", pagesRead)
	}
	if minutes <= 0 {
		return Errorf("minutes must be a positive integer, got %d", minutes)
	}
	return nil
}

// Date checks that a date string matches the standard YYYY-MM-DD format.
// Empty strings are allowed for optional dates.
func Date(dateStr string) error {
	if dateStr == "" {
		return nil
	}
	if _, err := time.Parse(constants.DateFormat, dateStr); err != nil {
		return Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}
	return nil
}
