// Package admin implements the tag administration console: filtered lists
// of every catalog collection with create, inline edit and confirmed delete.
package admin

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
	"github.com/heartmarshall/roleplay-admin/internal/notify"
	"github.com/heartmarshall/roleplay-admin/internal/service/hierarchy"
)

// ErrClosed is returned by console actions while the console is closed.
var ErrClosed = fmt.Errorf("admin console is closed: %w", domain.ErrConflict)

type tagCatalog interface {
	CreateLanguage(ctx context.Context, language string) bool
	CreateSkill(ctx context.Context, value string) bool
	CreateSubSkill(ctx context.Context, value, skillID, languageID string) bool
	CreateGrammarType(ctx context.Context, value, languageID string) bool
	CreateSubGrammarType(ctx context.Context, value, grammarTypeID, languageID string) bool
	CreateVocabulary(ctx context.Context, value string) bool
	CreateSubVocabulary(ctx context.Context, value, vocabularyID string) bool
	UpdateTag(ctx context.Context, kind domain.EntityKind, id, value string) bool
	RemoveTag(ctx context.Context, kind domain.EntityKind, id string) bool
}

type snapshotLoader interface {
	Snapshot(ctx context.Context) domain.Catalog
	Reset()
}

type notifier interface {
	Push(kind domain.NotificationKind, message string) string
	List() []notify.Notification
}

// Service is the admin console. One instance serves the single operator.
type Service struct {
	log     *slog.Logger
	catalog tagCatalog
	loader  snapshotLoader
	notify  notifier
	lock    *ScrollLock

	mu       sync.Mutex
	open     bool
	release  func()
	store    *hierarchy.Store
	filters  Filters
	parents  map[domain.EntityKind]string // parent kind -> id behind the filter value
	editing  map[domain.EntityKind]string
	deleting map[domain.EntityKind]string
	busy     map[domain.EntityKind]bool
}

// NewService creates a closed console.
func NewService(
	logger *slog.Logger,
	catalog tagCatalog,
	loader snapshotLoader,
	notify notifier,
	lock *ScrollLock,
) *Service {
	return &Service{
		log:      logger.With("service", "admin"),
		catalog:  catalog,
		loader:   loader,
		notify:   notify,
		lock:     lock,
		store:    hierarchy.NewStore(domain.Catalog{}),
		filters:  newFilters(),
		parents:  make(map[domain.EntityKind]string),
		editing:  make(map[domain.EntityKind]string),
		deleting: make(map[domain.EntityKind]string),
		busy:     make(map[domain.EntityKind]bool),
	}
}

// Open acquires the scroll lock and loads every collection. Opening an
// already open console only reloads.
func (s *Service) Open(ctx context.Context) {
	s.mu.Lock()
	if !s.open {
		s.release = s.lock.Acquire()
		s.open = true
		s.log.InfoContext(ctx, "console opened")
	}
	s.mu.Unlock()

	s.reload(ctx)
}

// Close releases the scroll lock and drops pending edits and delete
// confirmations. Closing a closed console is a no-op.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return
	}
	s.release()
	s.release = nil
	s.open = false
	clear(s.editing)
	clear(s.deleting)
	s.log.Info("console closed")
}

// IsOpen reports whether the console is open.
func (s *Service) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// reload refetches every collection in full.
func (s *Service) reload(ctx context.Context) {
	s.loader.Reset()
	cat := s.loader.Snapshot(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = hierarchy.NewStore(cat)
	s.dropStaleRows()
}

// dropStaleRows forgets edit and delete state of rows that no longer exist.
// Must be called with mu held.
func (s *Service) dropStaleRows() {
	for kind, id := range s.editing {
		if _, ok := s.value(kind, id); !ok {
			delete(s.editing, kind)
		}
	}
	for kind, id := range s.deleting {
		if _, ok := s.value(kind, id); !ok {
			delete(s.deleting, kind)
		}
	}
}

// begin marks kind busy. Must be called with mu held.
func (s *Service) begin(kind domain.EntityKind) error {
	if !s.open {
		return ErrClosed
	}
	if s.busy[kind] {
		return fmt.Errorf("%s: another change is in progress: %w", kind, domain.ErrConflict)
	}
	s.busy[kind] = true
	return nil
}

func (s *Service) end(kind domain.EntityKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, kind)
}

// value returns the display value of the entity id of kind.
// Must be called with mu held.
func (s *Service) value(kind domain.EntityKind, id string) (string, bool) {
	cat := s.store.Catalog()
	switch kind {
	case domain.EntityKindLanguage:
		return hierarchy.NewIndex(kind, cat.Languages).Value(id)
	case domain.EntityKindSkill:
		return hierarchy.NewIndex(kind, cat.Skills).Value(id)
	case domain.EntityKindSubSkill:
		return hierarchy.NewIndex(kind, cat.SubSkills).Value(id)
	case domain.EntityKindGrammarType:
		return hierarchy.NewIndex(kind, cat.GrammarTypes).Value(id)
	case domain.EntityKindSubGrammarType:
		return hierarchy.NewIndex(kind, cat.SubGrammarTypes).Value(id)
	case domain.EntityKindVocabulary:
		return hierarchy.NewIndex(kind, cat.Vocabularies).Value(id)
	case domain.EntityKindSubVocabulary:
		return hierarchy.NewIndex(kind, cat.SubVocabularies).Value(id)
	}
	return "", false
}

func validKind(kind domain.EntityKind) error {
	if !kind.IsValid() {
		return domain.NewValidationError("kind", fmt.Sprintf("unknown kind %q", kind))
	}
	return nil
}
