package api

import (
	"net/http"

	"github.com/dastas/libris-core/internal/auth"
)

// handleListUsers returns all user accounts. Admin only.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())
	if identity.Role != auth.RoleAdmin {
		writeForbidden(w, "admin role required")
		return
	}

	users, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error("listing users failed", "error", err)
		writeInternalError(w, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"users": users,
		"count": len(users),
	})
}
