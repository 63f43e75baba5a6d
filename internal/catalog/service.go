package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dastas/libris-core/internal/auth"
	"github.com/dastas/libris-core/internal/authz"
)

// Service orchestrates book operations. It is the only caller of the
// book repository: every mutating path resolves the target record,
// consults the authz engine, and only then touches storage. Denial
// paths never write.
type Service struct {
	repo     Repository
	events   EventPublisher
	recorder CirculationRecorder
	logger   *slog.Logger
}

// EventPublisher receives catalogue change notifications after a
// successful mutation. Implementations must not block the caller for
// long; failures are logged and ignored.
type EventPublisher interface {
	PublishBookEvent(event string, book *Book) error
}

// CirculationRecorder receives circulation status points for time-series
// storage. Writes are fire-and-forget.
type CirculationRecorder interface {
	RecordBookStatus(bookID int64, status string)
	RecordCatalogSize(count int)
}

// NewService creates a catalogue service backed by repo.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// SetEventPublisher wires an optional change-event sink (e.g. MQTT).
func (s *Service) SetEventPublisher(p EventPublisher) {
	s.events = p
}

// SetCirculationRecorder wires an optional time-series sink (e.g. InfluxDB).
func (s *Service) SetCirculationRecorder(r CirculationRecorder) {
	s.recorder = r
}

// List returns all books the identity may see. A denied identity gets an
// empty slice, never an error — listing degrades gracefully.
func (s *Service) List(ctx context.Context, identity authz.Identity) ([]Book, error) {
	if d := authz.Decide(identity, authz.ActionList, nil); !d.Allowed {
		s.logger.Debug("list denied", "user_id", identity.UserID, "role", identity.Role, "reason", d.Reason)
		return []Book{}, nil
	}
	return s.repo.List(ctx)
}

// Get returns a single book. Absence surfaces as ErrBookNotFound before
// any permission check, so callers can tell absence from denial.
func (s *Service) Get(ctx context.Context, identity authz.Identity, id int64) (*Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if d := authz.Decide(identity, authz.ActionRead, resourceOf(book)); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", ErrForbidden, d.Reason)
	}
	return book, nil
}

// Create validates the input and persists a new record. The owner is
// always the acting identity — caller-supplied ownership is never
// trusted.
func (s *Service) Create(ctx context.Context, identity authz.Identity, input CreateBookInput) (*Book, error) {
	if d := authz.Decide(identity, authz.ActionCreate, nil); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", ErrForbidden, d.Reason)
	}

	if input.Status == "" {
		input.Status = StatusAvailable
	}

	ownerID := identity.UserID
	book := &Book{
		Title:           input.Title,
		Author:          input.Author,
		Category:        input.Category,
		Status:          input.Status,
		ISBN:            input.ISBN,
		PublicationYear: input.PublicationYear,
		OwnerID:         &ownerID,
	}

	if err := ValidateBook(book); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	s.logger.Info("book created", "book_id", book.ID, "title", book.Title, "owner_id", ownerID)
	s.notify("created", book)
	s.recordStatus(book)
	s.recordSize(ctx)

	return book, nil
}

// Update applies a partial update: nil patch fields are left untouched.
// The merged record is re-validated before persisting.
func (s *Service) Update(ctx context.Context, identity authz.Identity, id int64, patch UpdateBookInput) (*Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if d := authz.Decide(identity, authz.ActionUpdate, resourceOf(book)); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", ErrForbidden, d.Reason)
	}

	statusChanged := applyPatch(book, patch)

	if err := ValidateBook(book); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	s.logger.Info("book updated", "book_id", book.ID, "updated_by", identity.UserID)
	s.notify("updated", book)
	if statusChanged {
		s.recordStatus(book)
	}

	return book, nil
}

// Delete removes a book record.
func (s *Service) Delete(ctx context.Context, identity authz.Identity, id int64) error {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if d := authz.Decide(identity, authz.ActionDelete, resourceOf(book)); !d.Allowed {
		return fmt.Errorf("%w: %s", ErrForbidden, d.Reason)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("book deleted", "book_id", id, "deleted_by", identity.UserID)
	s.notify("deleted", book)
	s.recordSize(ctx)

	return nil
}

// TransferOwnership reassigns a book's owner. This is the sole path that
// mutates owner_id, and it is an admin-level corrective action — the
// regular update flow never touches ownership. The new owner must exist
// (enforced by the foreign key); pass nil to clear ownership.
func (s *Service) TransferOwnership(ctx context.Context, identity authz.Identity, id int64, newOwner *int64) (*Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Ownership reassignment sits outside the closed action set: it is
	// never delegated, even to the current owner.
	if identity.Role != auth.RoleAdmin {
		return nil, fmt.Errorf("%w: %s", ErrForbidden, authz.ReasonRoleDenied)
	}

	if err := s.repo.UpdateOwner(ctx, id, newOwner); err != nil {
		return nil, err
	}

	book.OwnerID = newOwner
	s.logger.Info("book ownership transferred", "book_id", id, "by", identity.UserID)
	s.notify("updated", book)

	return book, nil
}

// resourceOf projects a book onto its authorization-relevant attributes.
func resourceOf(b *Book) *authz.Resource {
	return &authz.Resource{OwnerID: b.OwnerID}
}

// applyPatch merges non-nil patch fields into the book.
// Returns true if the circulation status changed.
func applyPatch(book *Book, patch UpdateBookInput) bool {
	if patch.Title != nil {
		book.Title = *patch.Title
	}
	if patch.Author != nil {
		book.Author = *patch.Author
	}
	if patch.Category != nil {
		book.Category = *patch.Category
	}
	if patch.ISBN != nil {
		book.ISBN = *patch.ISBN
	}
	if patch.PublicationYear != nil {
		book.PublicationYear = *patch.PublicationYear
	}

	statusChanged := false
	if patch.Status != nil && *patch.Status != book.Status {
		book.Status = *patch.Status
		statusChanged = true
	}
	return statusChanged
}

// notify publishes a change event if a publisher is wired (best-effort).
func (s *Service) notify(event string, book *Book) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishBookEvent(event, book); err != nil {
		s.logger.Warn("book event publish failed", "event", event, "book_id", book.ID, "error", err)
	}
}

// recordStatus writes a circulation point if a recorder is wired.
func (s *Service) recordStatus(book *Book) {
	if s.recorder == nil {
		return
	}
	s.recorder.RecordBookStatus(book.ID, string(book.Status))
}

// recordSize writes the catalogue size if a recorder is wired.
func (s *Service) recordSize(ctx context.Context) {
	if s.recorder == nil {
		return
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Warn("counting books for metrics failed", "error", err)
		return
	}
	s.recorder.RecordCatalogSize(count)
}
