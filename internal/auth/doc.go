// Package auth provides authentication and the identity model for Libris Core.
//
// It implements a 3-role model (reader → librarian → admin) with:
//   - Argon2id password hashing (OWASP 2025 recommendation)
//   - JWT access tokens (HS256, short-lived, validated by signature only)
//   - SQLite-backed user accounts with a roles reference table
//   - First-boot admin seeding with a generated one-time password
//
// Roles are a closed, case-sensitive set. An unrecognised role carries no
// permissions anywhere in the system — authorization fails closed. The
// permission rules themselves live in the authz package; auth only defines
// who the actor is.
package auth
