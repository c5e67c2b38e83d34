package hierarchy

import (
	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// Store answers visibility questions over one loaded catalog snapshot.
type Store struct {
	cat       domain.Catalog
	defaultID string
}

// NewStore wraps a snapshot.
func NewStore(cat domain.Catalog) *Store {
	return &Store{cat: cat, defaultID: DefaultLanguageID(cat.Languages)}
}

func (s *Store) Catalog() domain.Catalog { return s.cat }

// LanguageID resolves a language name or code to its id.
func (s *Store) LanguageID(nameOrCode string) string {
	return ResolveLanguageID(s.cat.Languages, nameOrCode)
}

// DefaultLanguageID returns the id of the DEFAULT language, or "".
func (s *Store) DefaultLanguageID() string { return s.defaultID }

// LanguageName returns the display value of a language id, or "".
func (s *Store) LanguageName(id string) string {
	for _, l := range s.cat.Languages {
		if l.ID == id {
			return l.Language
		}
	}
	return ""
}

// Languages returns every language sorted by name.
func (s *Store) Languages() []domain.Language {
	return SortByValue(s.cat.Languages)
}

// SelectableLanguages returns the languages an activity can be saved for:
// all of them except DEFAULT.
func (s *Store) SelectableLanguages() []domain.Language {
	result := make([]domain.Language, 0, len(s.cat.Languages))
	for _, l := range s.cat.Languages {
		if !l.IsDefault() {
			result = append(result, l)
		}
	}
	return SortByValue(result)
}

// Filter builds a Filter for parentIDs under languageID.
func (s *Store) Filter(parentIDs []string, languageID string) Filter {
	return Filter{ParentIDs: parentIDs, LanguageID: languageID, DefaultLanguageID: s.defaultID}
}

func (s *Store) VisibleSubSkills(skillIDs []string, languageID string) []domain.SubSkill {
	return SortByValue(Visible(s.cat.SubSkills, s.Filter(skillIDs, languageID)))
}

func (s *Store) VisibleGrammarTypes(languageID string) []domain.GrammarType {
	return SortByValue(Visible(s.cat.GrammarTypes, s.Filter(nil, languageID)))
}

func (s *Store) VisibleSubGrammarTypes(grammarIDs []string, languageID string) []domain.SubGrammarType {
	return SortByValue(Visible(s.cat.SubGrammarTypes, s.Filter(grammarIDs, languageID)))
}

func (s *Store) VisibleSubVocabularies(vocabularyIDs []string) []domain.SubVocabulary {
	return SortByValue(Visible(s.cat.SubVocabularies, s.Filter(vocabularyIDs, "")))
}

func (s *Store) Skills() []domain.Skill { return SortByValue(s.cat.Skills) }

func (s *Store) Vocabularies() []domain.Vocabulary { return SortByValue(s.cat.Vocabularies) }

// SkillID resolves a skill id or display value.
func (s *Store) SkillID(ref string) (string, bool) {
	return NewIndex(domain.EntityKindSkill, s.cat.Skills).ID(ref)
}

// GrammarTypeID resolves a grammar type id or display value.
func (s *Store) GrammarTypeID(ref string) (string, bool) {
	return NewIndex(domain.EntityKindGrammarType, s.cat.GrammarTypes).ID(ref)
}

// GrammarTypeIDIn resolves a grammar type id or display value among the
// grammar types visible under languageID, then in the full collection.
func (s *Store) GrammarTypeIDIn(ref, languageID string) (string, bool) {
	if id, ok := NewIndex(domain.EntityKindGrammarType, s.VisibleGrammarTypes(languageID)).ID(ref); ok {
		return id, true
	}
	return s.GrammarTypeID(ref)
}

// VocabularyID resolves a vocabulary id or display value.
func (s *Store) VocabularyID(ref string) (string, bool) {
	return NewIndex(domain.EntityKindVocabulary, s.cat.Vocabularies).ID(ref)
}
