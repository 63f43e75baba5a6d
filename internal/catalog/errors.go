package catalog

import (
	"errors"
	"strings"
)

var (
	// ErrBookNotFound is returned when a book ID does not exist.
	ErrBookNotFound = errors.New("book not found")

	// ErrForbidden is returned when the authorization engine denies an
	// operation. It is distinct from ErrBookNotFound so callers can tell
	// absence from denial.
	ErrForbidden = errors.New("operation not permitted")

	// ErrInvalidBook is the sentinel all validation failures match via
	// errors.Is. The concrete error is a *ValidationError carrying the
	// offending field names.
	ErrInvalidBook = errors.New("invalid book")
)

// ValidationError reports which fields of a create or update request were
// missing or malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid book: " + strings.Join(e.Fields, ", ")
}

// Is makes errors.Is(err, ErrInvalidBook) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidBook
}
