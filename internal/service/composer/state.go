package composer

import (
	"github.com/heartmarshall/roleplay-admin/internal/service/hierarchy"
)

// Field is one multi-select of the form.
type Field struct {
	Options  []string `json:"options"`
	Selected []string `json:"selected"`
}

// State is a serializable snapshot of the form.
type State struct {
	RoleplayID    string   `json:"roleplayId"`
	Language      string   `json:"language"`
	LanguageID    string   `json:"languageId"`
	Languages     []string `json:"languages"`
	Themes        []string `json:"themes"`
	DurationAprox int      `json:"durationAprox"`
	Saving        bool     `json:"saving"`
	SkillMain     Field    `json:"skillMain"`
	SubSkill      Field    `json:"subSkill"`
	Grammar       Field    `json:"grammar"`
	SubGrammar    Field    `json:"subGrammar"`
	Vocabulary    Field    `json:"vocabulary"`
	SubVocabulary Field    `json:"subVocabulary"`
}

// State returns the current form state.
func (c *Composer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		RoleplayID:    c.roleplayID,
		Language:      c.language,
		LanguageID:    c.languageID,
		Languages:     hierarchy.Values(c.store.SelectableLanguages()),
		Themes:        append([]string{}, c.themes...),
		DurationAprox: c.duration,
		Saving:        c.saving,
		SkillMain:     Field{Options: c.skills.Options(), Selected: c.skills.Selected()},
		SubSkill:      Field{Options: c.subSkills.Options(), Selected: c.subSkills.Selected()},
		Grammar:       Field{Options: c.grammar.Options(), Selected: c.grammar.Selected()},
		SubGrammar:    Field{Options: c.subGrammar.Options(), Selected: c.subGrammar.Selected()},
		Vocabulary:    Field{Options: c.vocabulary.Options(), Selected: c.vocabulary.Selected()},
		SubVocabulary: Field{Options: c.subVocab.Options(), Selected: c.subVocab.Selected()},
	}
}

// Language returns the active language name.
func (c *Composer) Language() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.language
}
