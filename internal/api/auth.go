package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dastas/libris-core/internal/auth"
)

// loginRequest is the request body for POST /auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the response body for POST /auth/login.
type loginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	ExpiresIn   int        `json:"expires_in"`
	User        *auth.User `json:"user"`
}

// registerRequest is the request body for POST /auth/register.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// changePasswordRequest is the request body for POST /auth/password.
type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// handleLogin authenticates a user by email and password and returns a JWT.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	user, err := s.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		// Unknown email and wrong password produce the same response.
		if errors.Is(err, auth.ErrUserNotFound) {
			writeUnauthorized(w, "invalid credentials")
			return
		}
		s.logger.Error("login lookup failed", "error", err)
		writeInternalError(w, "internal server error")
		return
	}

	match, err := auth.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !match {
		writeUnauthorized(w, "invalid credentials")
		return
	}

	ttl := s.secCfg.JWT.AccessTokenTTL
	token, err := auth.GenerateAccessToken(user, s.secCfg.JWT.Secret, ttl)
	if err != nil {
		s.logger.Error("token generation failed", "error", err)
		writeInternalError(w, "failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   ttl * 60, // seconds
		User:        user,
	})
}

// handleRegister creates a new user account.
//
// Self-service registration covers reader and librarian accounts only;
// admin accounts are provisioned out of band (seeding or librisctl).
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if !auth.IsValidUsername(req.Username) {
		writeBadRequest(w, "username must be 1-64 characters (letters, digits, . _ -)")
		return
	}
	if !auth.IsValidEmail(req.Email) {
		writeBadRequest(w, "invalid email address")
		return
	}
	if len(req.Password) < auth.MinPasswordLength {
		writeBadRequest(w, "password must be at least 8 characters")
		return
	}

	role := auth.Role(req.Role)
	if req.Role == "" {
		role = auth.RoleReader
	}
	if !auth.IsSelfServiceRole(role) {
		writeForbidden(w, "role not available for self-service registration")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("password hashing failed", "error", err)
		writeInternalError(w, "internal server error")
		return
	}

	user := &auth.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			writeConflict(w, "email already registered")
			return
		}
		s.logger.Error("user creation failed", "error", err)
		writeInternalError(w, "internal server error")
		return
	}

	s.logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	writeJSON(w, http.StatusCreated, user)
}

// handleMe returns the authenticated user's account.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())

	user, err := s.users.GetByID(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			// Token outlived the account.
			writeUnauthorized(w, "account no longer exists")
			return
		}
		s.logger.Error("user lookup failed", "error", err)
		writeInternalError(w, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// handleChangePassword updates the authenticated user's password after
// verifying the current one.
func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if len(req.NewPassword) < auth.MinPasswordLength {
		writeBadRequest(w, "password must be at least 8 characters")
		return
	}

	identity := identityFromContext(r.Context())

	user, err := s.users.GetByID(r.Context(), identity.UserID)
	if err != nil {
		writeUnauthorized(w, "account no longer exists")
		return
	}

	match, err := auth.VerifyPassword(req.CurrentPassword, user.PasswordHash)
	if err != nil || !match {
		writeUnauthorized(w, "current password is incorrect")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		s.logger.Error("password hashing failed", "error", err)
		writeInternalError(w, "internal server error")
		return
	}

	if err := s.users.UpdatePassword(r.Context(), user.ID, hash); err != nil {
		s.logger.Error("password update failed", "error", err)
		writeInternalError(w, "internal server error")
		return
	}

	s.logger.Info("password changed", "user_id", user.ID)
	writeJSON(w, http.StatusOK, map[string]any{"status": "password updated"})
}
