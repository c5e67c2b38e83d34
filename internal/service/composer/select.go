package composer

import (
	"strings"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// SetLanguage switches the active language by name or code and prunes every
// language-scoped selection. An unknown language leaves the options
// unfiltered; saving then fails until a known language is chosen.
func (c *Composer) SetLanguage(name string) error {
	name = strings.TrimSpace(name)
	if domain.IsDefaultLanguage(name) {
		return domain.NewValidationError("language", "DEFAULT is not a selectable language")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.language = name
	c.languageID = c.store.LanguageID(name)
	c.refilter()
	return nil
}

func (c *Composer) SelectSkills(values []string) error {
	return c.selectIn(c.skills, values)
}

func (c *Composer) SelectSubSkills(values []string) error {
	return c.selectIn(c.subSkills, values)
}

func (c *Composer) SelectGrammar(values []string) error {
	return c.selectIn(c.grammar, values)
}

func (c *Composer) SelectSubGrammar(values []string) error {
	return c.selectIn(c.subGrammar, values)
}

func (c *Composer) SelectVocabulary(values []string) error {
	return c.selectIn(c.vocabulary, values)
}

func (c *Composer) SelectSubVocabulary(values []string) error {
	return c.selectIn(c.subVocab, values)
}

type selectable interface {
	Select(values []string) error
}

func (c *Composer) selectIn(v selectable, values []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := v.Select(values); err != nil {
		return err
	}
	c.refilter()
	return nil
}
