// Package composer assembles a roleplay's tag selection for one language
// into a single activity payload and saves it to the catalog.
package composer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
	"github.com/heartmarshall/roleplay-admin/internal/service/hierarchy"
)

// DefaultDuration is the approximate activity length, in minutes, of a new
// composer.
const DefaultDuration = 30

type activityCatalog interface {
	CreateActivity(ctx context.Context, payload domain.ActivityPayload) bool
	GetRoleplayActivityByLanguage(ctx context.Context, roleplayID, languageID string) *domain.RoleplayActivity
	CreateSkill(ctx context.Context, value string) bool
	CreateSubSkill(ctx context.Context, value, skillID, languageID string) bool
	CreateGrammarType(ctx context.Context, value, languageID string) bool
	CreateSubGrammarType(ctx context.Context, value, grammarTypeID, languageID string) bool
	CreateVocabulary(ctx context.Context, value string) bool
	CreateSubVocabulary(ctx context.Context, value, vocabularyID string) bool
}

type snapshotLoader interface {
	Snapshot(ctx context.Context) domain.Catalog
	Reset()
}

type notifier interface {
	Push(kind domain.NotificationKind, message string) string
}

// Composer holds the editing state of one roleplay's activity form.
// It is safe for concurrent use.
type Composer struct {
	log        *slog.Logger
	catalog    activityCatalog
	loader     snapshotLoader
	notify     notifier
	onSaved    func(domain.TagSelection)
	roleplayID string

	loadMu sync.Mutex // serializes snapshot fetches

	mu         sync.Mutex
	store      *hierarchy.Store
	language   string
	languageID string
	themes     []string
	duration   int
	saving     bool

	skills     *hierarchy.View[domain.Skill]
	subSkills  *hierarchy.View[domain.SubSkill]
	grammar    *hierarchy.View[domain.GrammarType]
	subGrammar *hierarchy.View[domain.SubGrammarType]
	vocabulary *hierarchy.View[domain.Vocabulary]
	subVocab   *hierarchy.View[domain.SubVocabulary]
}

// Option configures a Composer.
type Option func(*Composer)

// WithDuration overrides DefaultDuration.
func WithDuration(minutes int) Option {
	return func(c *Composer) {
		if minutes >= 1 {
			c.duration = minutes
		}
	}
}

// WithOnSaved registers a callback invoked with the saved selection.
func WithOnSaved(fn func(domain.TagSelection)) Option {
	return func(c *Composer) { c.onSaved = fn }
}

// New creates an empty Composer for roleplayID. Call Load before use.
func New(
	logger *slog.Logger,
	roleplayID string,
	catalog activityCatalog,
	loader snapshotLoader,
	notify notifier,
	opts ...Option,
) *Composer {
	c := &Composer{
		log:        logger.With("service", "composer", "roleplay_id", roleplayID),
		catalog:    catalog,
		loader:     loader,
		notify:     notify,
		roleplayID: roleplayID,
		duration:   DefaultDuration,
		themes:     []string{},
		store:      hierarchy.NewStore(domain.Catalog{}),
		skills:     hierarchy.NewView[domain.Skill](domain.EntityKindSkill, nil),
		subSkills:  hierarchy.NewView[domain.SubSkill](domain.EntityKindSubSkill, nil),
		grammar:    hierarchy.NewView[domain.GrammarType](domain.EntityKindGrammarType, nil),
		subGrammar: hierarchy.NewView[domain.SubGrammarType](domain.EntityKindSubGrammarType, nil),
		vocabulary: hierarchy.NewView[domain.Vocabulary](domain.EntityKindVocabulary, nil),
		subVocab:   hierarchy.NewView[domain.SubVocabulary](domain.EntityKindSubVocabulary, nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RoleplayID returns the roleplay this composer edits.
func (c *Composer) RoleplayID() string { return c.roleplayID }

// Load fetches the catalog snapshot and re-applies the current selection.
func (c *Composer) Load(ctx context.Context) {
	cat := c.loader.Snapshot(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyCatalog(cat)
}

// Ensure loads the catalog unless the held snapshot is usable, and reports
// whether it fetched. A snapshot without languages is what an unreachable
// catalog leaves behind, so it is fetched again on the next call.
func (c *Composer) Ensure(ctx context.Context) bool {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	c.mu.Lock()
	usable := len(c.store.Catalog().Languages) > 0
	c.mu.Unlock()
	if usable {
		return false
	}
	c.reload(ctx)
	return true
}

// reload drops the cached snapshot and loads it again in full.
func (c *Composer) reload(ctx context.Context) {
	c.loader.Reset()
	c.Load(ctx)
}

// applyCatalog must be called with mu held.
func (c *Composer) applyCatalog(cat domain.Catalog) {
	c.store = hierarchy.NewStore(cat)
	c.languageID = c.store.LanguageID(c.language)

	c.skills.Reload(cat.Skills)
	c.subSkills.Reload(cat.SubSkills)
	c.grammar.Reload(cat.GrammarTypes)
	c.subGrammar.Reload(cat.SubGrammarTypes)
	c.vocabulary.Reload(cat.Vocabularies)
	c.subVocab.Reload(cat.SubVocabularies)
	c.refilter()
}

// refilter re-applies the language and parent filters, parents first, so
// every child selection is pruned against its already-pruned parents.
// Must be called with mu held.
func (c *Composer) refilter() {
	defaultID := c.store.DefaultLanguageID()

	c.grammar.Apply(hierarchy.Filter{LanguageID: c.languageID, DefaultLanguageID: defaultID})

	c.subSkills.Apply(hierarchy.Filter{
		ParentIDs:         c.skills.SelectedIDs(),
		LanguageID:        c.languageID,
		DefaultLanguageID: defaultID,
	})
	c.subGrammar.Apply(hierarchy.Filter{
		ParentIDs:         c.grammar.SelectedIDs(),
		LanguageID:        c.languageID,
		DefaultLanguageID: defaultID,
	})
	c.subVocab.Apply(hierarchy.Filter{ParentIDs: c.vocabulary.SelectedIDs()})
}
