package composer

import (
	"context"
	"strings"
	"sync"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// Factory builds a Composer with its own catalog snapshot.
type Factory func(roleplayID string) *Composer

// Registry keeps one Composer per roleplay being edited.
type Registry struct {
	sync.RWMutex
	items   map[string]*Composer
	factory Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry(factory Factory) *Registry {
	return &Registry{
		items:   make(map[string]*Composer),
		factory: factory,
	}
}

// Get returns the composer of roleplayID if one is open.
func (r *Registry) Get(roleplayID string) (*Composer, bool) {
	r.RLock()
	defer r.RUnlock()
	c, ok := r.items[roleplayID]
	return c, ok
}

// Open returns the composer of roleplayID, creating it when needed. The
// catalog is fetched again while the composer holds no usable snapshot, so
// reopening the form recovers from a catalog outage. A non-empty language
// that differs from the active one switches the form to it; the stored
// activity is loaded whenever the language or the snapshot changed.
func (r *Registry) Open(ctx context.Context, roleplayID, language string) (*Composer, error) {
	if !validRoleplayID(strings.TrimSpace(roleplayID)) {
		return nil, domain.NewValidationError("roleplayId", "required")
	}

	c := r.getOrCreate(roleplayID)
	fetched := c.Ensure(ctx)

	language = strings.TrimSpace(language)
	if language != "" && !strings.EqualFold(language, c.Language()) {
		if err := c.SetLanguage(language); err != nil {
			return nil, err
		}
	} else if !fetched {
		return c, nil
	}
	if c.State().LanguageID != "" {
		if _, err := c.LoadExisting(ctx); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Close forgets the composer of roleplayID.
func (r *Registry) Close(roleplayID string) bool {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.items[roleplayID]; !ok {
		return false
	}
	delete(r.items, roleplayID)
	return true
}

func (r *Registry) getOrCreate(roleplayID string) *Composer {
	r.Lock()
	defer r.Unlock()
	if c, ok := r.items[roleplayID]; ok {
		return c
	}
	c := r.factory(roleplayID)
	r.items[roleplayID] = c
	return c
}
