package admin

import (
	"maps"
	"strings"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// Filters narrow the console lists. Parent filters are tracked by display
// value; the grammar language filter by language id.
type Filters struct {
	Skill           string                       `json:"skill"`
	Grammar         string                       `json:"grammar"`
	Vocabulary      string                       `json:"vocabulary"`
	GrammarLanguage string                       `json:"grammarLanguage"`
	Search          map[domain.EntityKind]string `json:"search"`
}

func newFilters() Filters {
	return Filters{Search: make(map[domain.EntityKind]string)}
}

func (f Filters) clone() Filters {
	out := f
	out.Search = make(map[domain.EntityKind]string, len(f.Search))
	for k, v := range f.Search {
		out.Search[k] = v
	}
	return out
}

// FilterInput changes filters. Nil fields are left unchanged; an empty
// string clears a filter.
type FilterInput struct {
	Skill           *string
	Grammar         *string
	Vocabulary      *string
	GrammarLanguage *string
	Search          map[domain.EntityKind]string
}

// SetFilters validates and applies in. Parent filters must name an existing
// parent; the grammar language may be given by name or id. A grammar type
// named by display value is looked up among the grammar types of the grammar
// language first, so equal names in other languages do not shadow it.
func (s *Service) SetFilters(in FilterInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return ErrClosed
	}

	next := s.filters.clone()
	parents := maps.Clone(s.parents)
	var errs []domain.FieldError

	if in.GrammarLanguage != nil {
		v := strings.TrimSpace(*in.GrammarLanguage)
		id := s.store.LanguageID(v)
		if v != "" && id == "" {
			errs = append(errs, domain.FieldError{Field: "grammarLanguage", Message: "unknown language"})
		}
		next.GrammarLanguage = id
	}

	setParent := func(kind domain.EntityKind, ref *string, field, message string) {
		if ref == nil {
			return
		}
		v := strings.TrimSpace(*ref)
		value := parentField(&next, kind)
		if v == "" {
			*value = ""
			delete(parents, kind)
			return
		}
		id, ok := s.resolveParent(kind, v, next.GrammarLanguage)
		if !ok {
			errs = append(errs, domain.FieldError{Field: field, Message: message})
			return
		}
		display, _ := s.value(kind, id)
		*value = display
		parents[kind] = id
	}
	setParent(domain.EntityKindSkill, in.Skill, "skill", "unknown skill")
	setParent(domain.EntityKindGrammarType, in.Grammar, "grammar", "unknown grammar type")
	setParent(domain.EntityKindVocabulary, in.Vocabulary, "vocabulary", "unknown vocabulary")

	for kind, q := range in.Search {
		if !kind.IsValid() {
			errs = append(errs, domain.FieldError{Field: "search", Message: "unknown kind " + string(kind)})
			continue
		}
		if q = strings.TrimSpace(q); q == "" {
			delete(next.Search, kind)
		} else {
			next.Search[kind] = q
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	s.filters = next
	s.parents = parents
	return nil
}

// resolveParent maps a parent reference (id or display value) to an id.
// Must be called with mu held.
func (s *Service) resolveParent(kind domain.EntityKind, ref, grammarLanguage string) (string, bool) {
	switch kind {
	case domain.EntityKindSkill:
		return s.store.SkillID(ref)
	case domain.EntityKindGrammarType:
		return s.store.GrammarTypeIDIn(ref, grammarLanguage)
	case domain.EntityKindVocabulary:
		return s.store.VocabularyID(ref)
	}
	return "", false
}

// parentField returns the field of f tracking parent kind, or nil.
func parentField(f *Filters, kind domain.EntityKind) *string {
	switch kind {
	case domain.EntityKindSkill:
		return &f.Skill
	case domain.EntityKindGrammarType:
		return &f.Grammar
	case domain.EntityKindVocabulary:
		return &f.Vocabulary
	}
	return nil
}

// parentID returns the id of the active parent filter of a child kind.
// Must be called with mu held.
func (s *Service) parentID(child domain.EntityKind) (string, bool) {
	id, ok := s.parents[child.Parent()]
	return id, ok && id != ""
}

// renameParent follows a renamed parent with its filter value.
// Must be called with mu held.
func (s *Service) renameParent(kind domain.EntityKind, id, value string) {
	if f := parentField(&s.filters, kind); f != nil && s.parents[kind] == id {
		*f = value
	}
}

// dropParent clears the filter of a deleted parent.
// Must be called with mu held.
func (s *Service) dropParent(kind domain.EntityKind, id string) {
	if f := parentField(&s.filters, kind); f != nil && s.parents[kind] == id {
		*f = ""
		delete(s.parents, kind)
	}
}
