package catalog

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dastas/libris-core/internal/auth"
	"github.com/dastas/libris-core/internal/authz"
)

// testDB creates a temporary SQLite database with the full schema.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	// Use a temp file so WAL mode works (in-memory doesn't support it)
	f, err := os.CreateTemp("", "catalog-test-*.db")
	if err != nil {
		t.Fatalf("creating temp db: %v", err)
	}
	dbPath := f.Name()
	f.Close()
	t.Cleanup(func() { os.Remove(dbPath) })

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schemaSQL := `
		CREATE TABLE roles (
			id   INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		);

		INSERT INTO roles (id, name) VALUES
			(1, 'admin'),
			(2, 'librarian'),
			(3, 'reader');

		CREATE TABLE users (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			username      TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role_id       INTEGER NOT NULL REFERENCES roles(id),
			created_at    TEXT NOT NULL,
			updated_at    TEXT NOT NULL
		);

		CREATE TABLE books (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			title            TEXT NOT NULL,
			author           TEXT NOT NULL,
			category         TEXT NOT NULL DEFAULT '',
			status           TEXT NOT NULL DEFAULT 'available',
			isbn             TEXT NOT NULL DEFAULT '',
			publication_year INTEGER NOT NULL DEFAULT 0,
			owner_id         INTEGER REFERENCES users(id) ON DELETE SET NULL,
			created_at       TEXT NOT NULL,
			updated_at       TEXT NOT NULL
		);
	`
	if _, err := db.Exec(schemaSQL); err != nil {
		t.Fatalf("creating schema: %v", err)
	}

	return db
}

// createTestUser inserts a user account and returns its identity.
func createTestUser(t *testing.T, db *sql.DB, username string, role auth.Role) authz.Identity {
	t.Helper()

	repo := auth.NewUserRepository(db)
	user := &auth.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=1$c2FsdA$aGFzaA",
		Role:         role,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("creating test user %q: %v", username, err)
	}

	return authz.Identity{UserID: user.ID, Role: role}
}

// validInput returns a CreateBookInput that passes validation.
func validInput() CreateBookInput {
	return CreateBookInput{
		Title:           "The Left Hand of Darkness",
		Author:          "Ursula K. Le Guin",
		Category:        "Fiction",
		Status:          StatusAvailable,
		ISBN:            "978-0441478125",
		PublicationYear: 1969,
	}
}
