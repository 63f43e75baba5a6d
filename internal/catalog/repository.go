package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Repository defines the interface for book record persistence.
type Repository interface {
	Create(ctx context.Context, book *Book) error
	GetByID(ctx context.Context, id int64) (*Book, error)
	List(ctx context.Context) ([]Book, error)
	Update(ctx context.Context, book *Book) error
	UpdateOwner(ctx context.Context, id int64, ownerID *int64) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// bookColumns is the SELECT list shared by all book queries.
const bookColumns = `id, title, author, category, status, isbn, publication_year, owner_id, created_at, updated_at`

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed book repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts a new book record and fills in the generated ID.
func (r *SQLiteRepository) Create(ctx context.Context, book *Book) error {
	now := time.Now().UTC().Format(time.RFC3339)
	book.CreatedAt, _ = time.Parse(time.RFC3339, now) //nolint:errcheck // format is controlled
	book.UpdatedAt = book.CreatedAt

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO books (title, author, category, status, isbn, publication_year, owner_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		book.Title, book.Author, book.Category, string(book.Status),
		book.ISBN, book.PublicationYear, nullInt64(book.OwnerID), now, now,
	)
	if err != nil {
		return fmt.Errorf("inserting book: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading book id: %w", err)
	}
	book.ID = id

	return nil
}

// GetByID returns a single book by ID.
func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*Book, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+bookColumns+" FROM books WHERE id = ?", id)
	return scanBookFrom(row)
}

// List returns all books ordered by creation date.
func (r *SQLiteRepository) List(ctx context.Context) ([]Book, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookColumns+" FROM books ORDER BY created_at ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		b, err := scanBookFrom(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}

	if books == nil {
		books = []Book{}
	}
	return books, nil
}

// Update persists a book's mutable fields. The owner is never touched
// here — ownership changes go through UpdateOwner.
func (r *SQLiteRepository) Update(ctx context.Context, book *Book) error {
	now := time.Now().UTC().Format(time.RFC3339)
	book.UpdatedAt, _ = time.Parse(time.RFC3339, now) //nolint:errcheck // format is controlled

	result, err := r.db.ExecContext(ctx,
		`UPDATE books SET title = ?, author = ?, category = ?, status = ?, isbn = ?, publication_year = ?, updated_at = ?
		 WHERE id = ?`,
		book.Title, book.Author, book.Category, string(book.Status),
		book.ISBN, book.PublicationYear, now, book.ID,
	)
	if err != nil {
		return fmt.Errorf("updating book: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrBookNotFound
	}
	return nil
}

// UpdateOwner reassigns a book's owner. The new owner must exist (FK);
// pass nil to clear ownership.
func (r *SQLiteRepository) UpdateOwner(ctx context.Context, id int64, ownerID *int64) error {
	now := time.Now().UTC().Format(time.RFC3339)

	result, err := r.db.ExecContext(ctx,
		"UPDATE books SET owner_id = ?, updated_at = ? WHERE id = ?",
		nullInt64(ownerID), now, id,
	)
	if err != nil {
		return fmt.Errorf("updating book owner: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrBookNotFound
	}
	return nil
}

// Delete removes a book record by ID.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM books WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrBookNotFound
	}
	return nil
}

// Count returns the total number of book records.
func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting books: %w", err)
	}
	return count, nil
}

// scanner is an interface for sql.Row and sql.Rows Scan methods.
type scanner interface {
	Scan(dest ...any) error
}

// scanBookFrom scans a book from any scanner (Row or Rows).
func scanBookFrom(s scanner) (*Book, error) {
	var b Book
	var status string
	var ownerID sql.NullInt64
	var createdAt, updatedAt string

	err := s.Scan(&b.ID, &b.Title, &b.Author, &b.Category, &status,
		&b.ISBN, &b.PublicationYear, &ownerID, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("scanning book: %w", err)
	}

	b.Status = Status(status)
	if ownerID.Valid {
		b.OwnerID = &ownerID.Int64
	}
	b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // format is controlled
	b.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt) //nolint:errcheck // format is controlled

	return &b, nil
}

// nullInt64 converts a *int64 to sql.NullInt64 for nullable columns.
func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
