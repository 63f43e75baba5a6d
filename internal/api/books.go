package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dastas/libris-core/internal/catalog"
)

// transferOwnerRequest is the request body for PUT /books/{id}/owner.
// A null owner_id clears ownership, leaving the record admin-only.
type transferOwnerRequest struct {
	OwnerID *int64 `json:"owner_id"`
}

// handleListBooks returns the catalogue visible to the caller.
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())

	books, err := s.catalog.List(r.Context(), identity)
	if err != nil {
		s.logger.Error("listing books failed", "error", err)
		writeInternalError(w, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"books": books,
		"count": len(books),
	})
}

// handleCreateBook adds a new book to the catalogue.
func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var input catalog.CreateBookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	identity := identityFromContext(r.Context())

	book, err := s.catalog.Create(r.Context(), identity, input)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, book)
}

// handleGetBook returns a single book by ID.
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := bookIDParam(w, r)
	if !ok {
		return
	}

	identity := identityFromContext(r.Context())

	book, err := s.catalog.Get(r.Context(), identity, id)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, book)
}

// handleUpdateBook applies a partial update to a book.
func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := bookIDParam(w, r)
	if !ok {
		return
	}

	var patch catalog.UpdateBookInput
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	identity := identityFromContext(r.Context())

	book, err := s.catalog.Update(r.Context(), identity, id, patch)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, book)
}

// handleDeleteBook removes a book from the catalogue.
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := bookIDParam(w, r)
	if !ok {
		return
	}

	identity := identityFromContext(r.Context())

	if err := s.catalog.Delete(r.Context(), identity, id); err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}

// handleTransferBookOwner reassigns a book's owner (admin only).
func (s *Server) handleTransferBookOwner(w http.ResponseWriter, r *http.Request) {
	id, ok := bookIDParam(w, r)
	if !ok {
		return
	}

	var req transferOwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	identity := identityFromContext(r.Context())

	book, err := s.catalog.TransferOwnership(r.Context(), identity, id, req.OwnerID)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, book)
}

// bookIDParam parses the {id} route parameter, writing a 400 on failure.
func bookIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		writeBadRequest(w, "invalid book id")
		return 0, false
	}
	return id, true
}
