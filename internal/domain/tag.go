package domain

import "strings"

// DefaultLanguage is the sentinel language value meaning "applies to every language".
const DefaultLanguage = "DEFAULT"

// IsDefaultLanguage reports whether s is the DEFAULT sentinel (case-insensitive).
func IsDefaultLanguage(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), DefaultLanguage)
}

// Tag is any catalog entity shown to the admin by its display value.
type Tag interface {
	TagID() string
	TagValue() string
}

// Scoped is a Tag that may be restricted to one language.
// An empty ScopeLanguage means the tag applies to every language.
type Scoped interface {
	Tag
	ScopeLanguage() string
}

// Child is a Tag that belongs to a parent Tag.
type Child interface {
	Tag
	ParentID() string
}

// Language is a scoping dimension for grammar and skills.
type Language struct {
	ID       string `json:"id"`
	Language string `json:"language"`
}

func (l Language) TagID() string    { return l.ID }
func (l Language) TagValue() string { return l.Language }

// IsDefault reports whether this record is the DEFAULT sentinel language.
func (l Language) IsDefault() bool { return IsDefaultLanguage(l.Language) }

// Skill is a top-level, language-independent skill.
type Skill struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

func (s Skill) TagID() string    { return s.ID }
func (s Skill) TagValue() string { return s.Value }

// SubSkill belongs to one Skill and is optionally scoped to a language.
type SubSkill struct {
	ID       string `json:"id"`
	Value    string `json:"value"`
	Skill    string `json:"skill"`
	Language string `json:"language,omitempty"`
}

func (s SubSkill) TagID() string         { return s.ID }
func (s SubSkill) TagValue() string      { return s.Value }
func (s SubSkill) ParentID() string      { return s.Skill }
func (s SubSkill) ScopeLanguage() string { return s.Language }

// GrammarType is always scoped to a language (DEFAULT included).
type GrammarType struct {
	ID       string `json:"id"`
	Value    string `json:"value"`
	Language string `json:"language"`
}

func (g GrammarType) TagID() string         { return g.ID }
func (g GrammarType) TagValue() string      { return g.Value }
func (g GrammarType) ScopeLanguage() string { return g.Language }

// SubGrammarType belongs to one GrammarType and is scoped to a language.
type SubGrammarType struct {
	ID       string `json:"id"`
	Value    string `json:"value"`
	Grammar  string `json:"grammar"`
	Language string `json:"language"`
}

func (s SubGrammarType) TagID() string         { return s.ID }
func (s SubGrammarType) TagValue() string      { return s.Value }
func (s SubGrammarType) ParentID() string      { return s.Grammar }
func (s SubGrammarType) ScopeLanguage() string { return s.Language }

// Vocabulary is a main vocabulary set.
type Vocabulary struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

func (v Vocabulary) TagID() string    { return v.ID }
func (v Vocabulary) TagValue() string { return v.Value }

// SubVocabulary is a term inside a Vocabulary set.
type SubVocabulary struct {
	ID           string `json:"id"`
	Value        string `json:"value"`
	VocabularyID string `json:"vocabularyId"`
}

func (s SubVocabulary) TagID() string    { return s.ID }
func (s SubVocabulary) TagValue() string { return s.Value }
func (s SubVocabulary) ParentID() string { return s.VocabularyID }

// Catalog is one loaded snapshot of every tag collection.
type Catalog struct {
	Languages       []Language
	Skills          []Skill
	SubSkills       []SubSkill
	GrammarTypes    []GrammarType
	SubGrammarTypes []SubGrammarType
	Vocabularies    []Vocabulary
	SubVocabularies []SubVocabulary
}
