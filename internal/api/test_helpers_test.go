package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dastas/libris-core/internal/auth"
	"github.com/dastas/libris-core/internal/catalog"
	"github.com/dastas/libris-core/internal/infrastructure/config"
	"github.com/dastas/libris-core/internal/infrastructure/logging"
)

const testJWTSecret = "test-secret-key"

// testEnv bundles a server, its router, and the backing database for
// handler tests. Requests go straight to the router — no listener.
type testEnv struct {
	router http.Handler
	db     *sql.DB
	users  auth.UserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	f, err := os.CreateTemp("", "api-test-*.db")
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

	users := auth.NewUserRepository(db)
	catalogSvc := catalog.NewService(catalog.NewSQLiteRepository(db), nil)

	server, err := New(Deps{
		Config: config.APIConfig{Host: "127.0.0.1", Port: 8080},
		Security: config.SecurityConfig{
			JWT: config.JWTConfig{Secret: testJWTSecret, AccessTokenTTL: 15},
		},
		Logger:  logging.Default(),
		Users:   users,
		Catalog: catalogSvc,
		Version: "test",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return &testEnv{
		router: server.buildRouter(),
		db:     db,
		users:  users,
	}
}

// createUser inserts an account with a known password and returns it.
func (e *testEnv) createUser(t *testing.T, username, password string, role auth.Role) *auth.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}

	user := &auth.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         role,
	}
	if err := e.users.Create(context.Background(), user); err != nil {
		t.Fatalf("creating user %q: %v", username, err)
	}
	return user
}

// token mints a valid access token for the user.
func (e *testEnv) token(t *testing.T, user *auth.User) string {
	t.Helper()

	token, err := auth.GenerateAccessToken(user, testJWTSecret, 15)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return token
}

// request performs an HTTP request against the router. A non-nil body is
// JSON-encoded; an empty token omits the Authorization header.
func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// decodeJSON unmarshals a response body into v.
func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decoding response %q: %v", rr.Body.String(), err)
	}
}

// itoa formats a record ID for a URL path.
func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// decodeError unmarshals a structured error response.
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) Error {
	t.Helper()
	var e Error
	decodeJSON(t, rr, &e)
	return e
}

// seedBook creates a book through the API as the given user and returns it.
func (e *testEnv) seedBook(t *testing.T, token string) catalog.Book {
	t.Helper()

	rr := e.request(t, http.MethodPost, "/api/v1/books", token, map[string]any{
		"title":            "The Name of the Rose",
		"author":           "Umberto Eco",
		"category":         "Fiction",
		"isbn":             "978-0156001311",
		"publication_year": 1980,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("seeding book: status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var book catalog.Book
	decodeJSON(t, rr, &book)
	return book
}
