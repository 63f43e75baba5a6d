package catalog

import (
	"strings"
	"time"
)

// Validation constants.
const (
	// minPublicationYear is the earliest plausible publication year
	// (movable-type printing).
	minPublicationYear = 1450

	// maxFieldLength caps free-text fields.
	maxFieldLength = 500
)

// maxPublicationYear returns the latest plausible publication year.
// Next year is allowed — publishers pre-date editions.
func maxPublicationYear() int {
	return time.Now().UTC().Year() + 1
}

// ValidateBook checks a fully-populated record before persistence.
// It returns a *ValidationError listing every offending field, or nil.
func ValidateBook(b *Book) error {
	var fields []string

	if strings.TrimSpace(b.Title) == "" || len(b.Title) > maxFieldLength {
		fields = append(fields, "title")
	}
	if strings.TrimSpace(b.Author) == "" || len(b.Author) > maxFieldLength {
		fields = append(fields, "author")
	}
	if strings.TrimSpace(b.Category) == "" || len(b.Category) > maxFieldLength {
		fields = append(fields, "category")
	}
	if !IsValidStatus(b.Status) {
		fields = append(fields, "status")
	}
	if strings.TrimSpace(b.ISBN) == "" || len(b.ISBN) > maxFieldLength {
		fields = append(fields, "isbn")
	}
	if b.PublicationYear < minPublicationYear || b.PublicationYear > maxPublicationYear() {
		fields = append(fields, "publication_year")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
