package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// RequestDelete asks for confirmation before deleting the row id of kind.
func (s *Service) RequestDelete(kind domain.EntityKind, id string) error {
	if err := validKind(kind); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return ErrClosed
	}
	if _, ok := s.value(kind, id); !ok {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	s.deleting[kind] = id
	return nil
}

// CancelDelete dismisses the pending confirmation of kind.
func (s *Service) CancelDelete(kind domain.EntityKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.deleting, kind)
}

// ConfirmDelete deletes the row awaiting confirmation. Deleting the active
// parent filter, or the grammar language filter, clears that filter.
// The confirmation is dismissed whatever the outcome.
func (s *Service) ConfirmDelete(ctx context.Context, kind domain.EntityKind) error {
	if err := validKind(kind); err != nil {
		return err
	}

	s.mu.Lock()
	id, pending := s.deleting[kind]
	if !pending {
		s.mu.Unlock()
		return domain.NewValidationError(kind.String(), "no deletion awaiting confirmation")
	}
	if err := s.begin(kind); err != nil {
		s.mu.Unlock()
		return err
	}
	delete(s.deleting, kind)
	value, _ := s.value(kind, id)
	s.mu.Unlock()
	defer s.end(kind)

	if !s.catalog.RemoveTag(ctx, kind, id) {
		s.notify.Push(domain.NotificationError, fmt.Sprintf("Could not delete %q", value))
		return fmt.Errorf("delete %s %s: %w", kind, id, domain.ErrCatalogUnavailable)
	}

	s.mu.Lock()
	s.dropParent(kind, id)
	if kind == domain.EntityKindLanguage && s.filters.GrammarLanguage == id {
		s.filters.GrammarLanguage = ""
	}
	if s.editing[kind] == id {
		delete(s.editing, kind)
	}
	s.mu.Unlock()

	s.reload(ctx)
	s.log.InfoContext(ctx, "tag deleted", slog.String("kind", kind.String()), slog.String("id", id))
	s.notify.Push(domain.NotificationSuccess, fmt.Sprintf("Deleted %q", value))
	return nil
}
