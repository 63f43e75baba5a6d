package catalog

import "time"

// Status is the circulation state of a book record.
type Status string

const (
	// StatusAvailable marks a book that can be borrowed.
	StatusAvailable Status = "available"

	// StatusBorrowed marks a book currently on loan.
	StatusBorrowed Status = "borrowed"
)

// ValidStatuses is the closed set of circulation states.
var ValidStatuses = []Status{StatusAvailable, StatusBorrowed}

// IsValidStatus returns true if the status is a member of the closed set.
func IsValidStatus(s Status) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Book represents a catalogue record.
//
// OwnerID records the user who created the record and drives the
// librarian ownership rules. It is a weak back reference: deleting the
// owning user clears it rather than deleting the book, leaving a record
// only an admin can mutate.
type Book struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Category        string    `json:"category"`
	Status          Status    `json:"status"`
	ISBN            string    `json:"isbn"`
	PublicationYear int       `json:"publication_year"`
	OwnerID         *int64    `json:"owner_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateBookInput holds the caller-supplied fields for a new record.
// Ownership is never part of the input — the service assigns it from the
// acting identity.
type CreateBookInput struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Category        string `json:"category"`
	Status          Status `json:"status"`
	ISBN            string `json:"isbn"`
	PublicationYear int    `json:"publication_year"`
}

// UpdateBookInput holds a partial update. Nil fields are left untouched;
// owner_id is deliberately absent (see Service.TransferOwnership).
type UpdateBookInput struct {
	Title           *string `json:"title,omitempty"`
	Author          *string `json:"author,omitempty"`
	Category        *string `json:"category,omitempty"`
	Status          *Status `json:"status,omitempty"`
	ISBN            *string `json:"isbn,omitempty"`
	PublicationYear *int    `json:"publication_year,omitempty"`
}
