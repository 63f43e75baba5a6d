package auth

import (
	"context"
	"log/slog"
	"testing"
)

func TestSeedAdmin_FirstBoot(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	password, err := SeedAdmin(ctx, repo, slog.Default())
	if err != nil {
		t.Fatalf("SeedAdmin() error = %v", err)
	}
	if password == "" {
		t.Fatal("SeedAdmin() should return the generated password on first boot")
	}

	admin, err := repo.GetByEmail(ctx, "admin@libris.local")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if admin.Role != RoleAdmin {
		t.Errorf("Role = %q, want %q", admin.Role, RoleAdmin)
	}

	ok, err := VerifyPassword(password, admin.PasswordHash)
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if !ok {
		t.Error("generated password should verify against stored hash")
	}
}

func TestSeedAdmin_SkipsWhenUsersExist(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	hash, _ := HashPassword("password123")
	existing := &User{
		Username:     "someone",
		Email:        "someone@example.com",
		PasswordHash: hash,
		Role:         RoleReader,
	}
	if err := repo.Create(ctx, existing); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	password, err := SeedAdmin(ctx, repo, slog.Default())
	if err != nil {
		t.Fatalf("SeedAdmin() error = %v", err)
	}
	if password != "" {
		t.Error("SeedAdmin() should skip when users already exist")
	}

	count, _ := repo.Count(ctx)
	if count != 1 {
		t.Errorf("Count() = %d, want 1 (no admin seeded)", count)
	}
}
