package auth

import (
	"errors"
	"regexp"
	"time"
)

// usernamePattern defines the valid format for usernames:
// alphanumeric, dots, hyphens, underscores, 1-64 characters.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,64}$`)

// emailPattern is a pragmatic email shape check (local@domain.tld).
// Full RFC 5322 validation is not attempted.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// maxUsernameLength is the maximum allowed username length.
const maxUsernameLength = 64

// IsValidUsername checks if a username meets format requirements.
// Usernames must be 1-64 characters, alphanumeric with dots, hyphens, underscores.
func IsValidUsername(username string) bool {
	return len(username) <= maxUsernameLength && usernamePattern.MatchString(username)
}

// IsValidEmail checks if an email address has a plausible shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Role represents an authorisation tier in the system.
//
// The set is closed and case-sensitive: role comparison is exact string
// equality, and any value outside the three constants below is denied
// every action.
type Role string

const (
	// RoleReader is a borrowing member. Can browse the catalogue but
	// never mutates book records.
	RoleReader Role = "reader"

	// RoleLibrarian catalogues books. Can create records and edit or
	// delete only the records they own (created).
	RoleLibrarian Role = "librarian"

	// RoleAdmin has full catalogue control regardless of ownership,
	// plus user management and ownership reassignment.
	RoleAdmin Role = "admin"
)

// ValidRoles is the set of valid user roles.
var ValidRoles = []Role{RoleReader, RoleLibrarian, RoleAdmin}

// IsValidRole returns true if the role is a member of the closed role set.
func IsValidRole(r Role) bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

// SelfServiceRoles are the roles a user may choose at registration.
// Admin accounts are never self-service — they are seeded or created
// by an existing admin.
var SelfServiceRoles = []Role{RoleReader, RoleLibrarian}

// IsSelfServiceRole returns true if the role may be chosen at registration.
func IsSelfServiceRole(r Role) bool {
	for _, v := range SelfServiceRoles {
		if r == v {
			return true
		}
	}
	return false
}

// User represents an authenticated account.
//
// A user holds exactly one role for its entire lifetime — there is no
// role-change operation. The role is stored as a foreign key into the
// roles reference table and resolved to its name on read.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialised
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sentinel errors for auth operations.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrUnknownRole        = errors.New("unknown role")
	ErrTokenInvalid       = errors.New("invalid token")
)
