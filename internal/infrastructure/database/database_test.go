package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dastas/libris-core/internal/infrastructure/database"
	_ "github.com/dastas/libris-core/migrations"
)

func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open(database.Config{
		Path:        filepath.Join(t.TempDir(), "libris.db"),
		WALMode:     true,
		BusyTimeout: 5,
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAndHealthCheck(t *testing.T) {
	db := openTestDB(t)

	if err := db.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}
	if db.Path() == "" {
		t.Error("Path() should return the database file path")
	}
}

func TestMigrate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	// The schema is in place: reference roles are seeded
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM roles").Scan(&count); err != nil {
		t.Fatalf("querying roles: %v", err)
	}
	if count != 3 {
		t.Errorf("roles count = %d, want 3", count)
	}

	applied, pending, err := db.GetMigrationStatus(ctx)
	if err != nil {
		t.Fatalf("GetMigrationStatus() error = %v", err)
	}
	if len(applied) == 0 {
		t.Error("no migrations recorded as applied")
	}
	if len(pending) != 0 {
		t.Errorf("pending = %d, want 0", len(pending))
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("first Migrate() error = %v", err)
	}
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}

	applied, _, _ := db.GetMigrationStatus(ctx)
	seen := make(map[string]bool)
	for _, m := range applied {
		if seen[m.Version] {
			t.Errorf("migration %s applied twice", m.Version)
		}
		seen[m.Version] = true
	}
}

func TestMigrateDown(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	applied, _, _ := db.GetMigrationStatus(ctx)
	before := len(applied)

	if err := db.MigrateDown(ctx); err != nil {
		t.Fatalf("MigrateDown() error = %v", err)
	}

	applied, pending, _ := db.GetMigrationStatus(ctx)
	if len(applied) != before-1 {
		t.Errorf("applied = %d, want %d", len(applied), before-1)
	}
	if len(pending) != 1 {
		t.Errorf("pending = %d, want 1", len(pending))
	}
}
