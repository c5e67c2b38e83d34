package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// BeginEdit puts the row id of kind into editing. Any other row of the same
// kind being edited returns to viewing.
func (s *Service) BeginEdit(kind domain.EntityKind, id string) error {
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
	s.editing[kind] = id
	if s.deleting[kind] == id {
		delete(s.deleting, kind)
	}
	return nil
}

// CancelEdit returns the row of kind being edited to viewing.
func (s *Service) CancelEdit(kind domain.EntityKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.editing, kind)
}

// SaveEdit renames the row of kind being edited. When that row is the active
// parent filter, the filter follows the new name. On failure the row stays
// in editing.
func (s *Service) SaveEdit(ctx context.Context, kind domain.EntityKind, value string) error {
	if err := validKind(kind); err != nil {
		return err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.NewValidationError("value", "required")
	}

	s.mu.Lock()
	id, editing := s.editing[kind]
	if !editing {
		s.mu.Unlock()
		return domain.NewValidationError(kind.String(), "no row is being edited")
	}
	if err := s.begin(kind); err != nil {
		s.mu.Unlock()
		return err
	}
	oldValue, _ := s.value(kind, id)
	s.mu.Unlock()
	defer s.end(kind)

	if !s.catalog.UpdateTag(ctx, kind, id, value) {
		s.notify.Push(domain.NotificationError, fmt.Sprintf("Could not update %q", oldValue))
		return fmt.Errorf("update %s %s: %w", kind, id, domain.ErrCatalogUnavailable)
	}

	s.mu.Lock()
	s.renameParent(kind, id, value)
	if s.editing[kind] == id {
		delete(s.editing, kind)
	}
	s.mu.Unlock()

	s.reload(ctx)
	s.log.InfoContext(ctx, "tag updated",
		slog.String("kind", kind.String()),
		slog.String("id", id),
		slog.String("value", value),
	)
	s.notify.Push(domain.NotificationSuccess, fmt.Sprintf("Updated %q", value))
	return nil
}
