package catalog

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validBook() *Book {
	owner := int64(1)
	return &Book{
		Title:           "Permutation City",
		Author:          "Greg Egan",
		Category:        "Fiction",
		Status:          StatusAvailable,
		ISBN:            "978-1597805391",
		PublicationYear: 1994,
		OwnerID:         &owner,
	}
}

func TestValidateBook_Valid(t *testing.T) {
	if err := ValidateBook(validBook()); err != nil {
		t.Errorf("ValidateBook() error = %v, want nil", err)
	}
}

func TestValidateBook_CollectsAllFields(t *testing.T) {
	book := &Book{
		Title:           "",
		Author:          "  ",
		Category:        "",
		Status:          "lost",
		ISBN:            "",
		PublicationYear: 1200,
	}

	err := ValidateBook(book)
	if err == nil {
		t.Fatal("ValidateBook() should fail")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error should be *ValidationError, got %T", err)
	}

	want := []string{"title", "author", "category", "status", "isbn", "publication_year"}
	if len(verr.Fields) != len(want) {
		t.Fatalf("Fields = %v, want %v", verr.Fields, want)
	}
	for i, f := range want {
		if verr.Fields[i] != f {
			t.Errorf("Fields[%d] = %q, want %q", i, verr.Fields[i], f)
		}
	}
}

func TestValidateBook_SentinelMatch(t *testing.T) {
	book := validBook()
	book.Title = ""

	err := ValidateBook(book)
	if !errors.Is(err, ErrInvalidBook) {
		t.Errorf("errors.Is(err, ErrInvalidBook) should be true, err = %v", err)
	}
}

func TestValidateBook_YearBounds(t *testing.T) {
	nextYear := time.Now().UTC().Year() + 1

	tests := []struct {
		name  string
		year  int
		valid bool
	}{
		{"earliest plausible", 1450, true},
		{"pre-print", 1449, false},
		{"next year preprint", nextYear, true},
		{"too far ahead", nextYear + 1, false},
		{"zero", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := validBook()
			book.PublicationYear = tt.year
			err := ValidateBook(book)
			if tt.valid && err != nil {
				t.Errorf("year %d: error = %v, want nil", tt.year, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("year %d: want validation error", tt.year)
			}
		})
	}
}

func TestValidateBook_FieldLength(t *testing.T) {
	book := validBook()
	book.Title = strings.Repeat("x", 501)

	err := ValidateBook(book)
	if err == nil {
		t.Fatal("overlong title should fail validation")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) || len(verr.Fields) != 1 || verr.Fields[0] != "title" {
		t.Errorf("Fields = %v, want [title]", err)
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: []string{"title", "isbn"}}
	msg := err.Error()
	if !strings.Contains(msg, "title") || !strings.Contains(msg, "isbn") {
		t.Errorf("Error() = %q, should name the offending fields", msg)
	}
}
