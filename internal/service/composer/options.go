package composer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
	"github.com/heartmarshall/roleplay-admin/internal/service/hierarchy"
)

// AddOption creates a new catalog entry of kind from the form, then reloads
// and selects it. Children are created under the first selected parent, or
// the first listed parent when none is selected; language-scoped kinds take
// the active language (DEFAULT when none is chosen).
func (c *Composer) AddOption(ctx context.Context, kind domain.EntityKind, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.NewValidationError("value", "required")
	}

	c.mu.Lock()
	parentID, languageID, err := c.optionScope(kind)
	c.mu.Unlock()
	if err != nil {
		return err
	}

	var ok bool
	switch kind {
	case domain.EntityKindSkill:
		ok = c.catalog.CreateSkill(ctx, value)
	case domain.EntityKindSubSkill:
		ok = c.catalog.CreateSubSkill(ctx, value, parentID, languageID)
	case domain.EntityKindGrammarType:
		ok = c.catalog.CreateGrammarType(ctx, value, languageID)
	case domain.EntityKindSubGrammarType:
		ok = c.catalog.CreateSubGrammarType(ctx, value, parentID, languageID)
	case domain.EntityKindVocabulary:
		ok = c.catalog.CreateVocabulary(ctx, value)
	case domain.EntityKindSubVocabulary:
		ok = c.catalog.CreateSubVocabulary(ctx, value, parentID)
	}
	if !ok {
		c.notify.Push(domain.NotificationError, fmt.Sprintf("Could not add %q", value))
		return fmt.Errorf("add %s: %w", kind, domain.ErrCatalogUnavailable)
	}

	c.reload(ctx)

	c.mu.Lock()
	switch kind {
	case domain.EntityKindSkill:
		addSelection(c.skills, value)
	case domain.EntityKindSubSkill:
		addSelection(c.subSkills, value)
	case domain.EntityKindGrammarType:
		addSelection(c.grammar, value)
	case domain.EntityKindSubGrammarType:
		addSelection(c.subGrammar, value)
	case domain.EntityKindVocabulary:
		addSelection(c.vocabulary, value)
	case domain.EntityKindSubVocabulary:
		addSelection(c.subVocab, value)
	}
	c.refilter()
	c.mu.Unlock()

	c.log.InfoContext(ctx, "option added", slog.String("kind", kind.String()), slog.String("value", value))
	c.notify.Push(domain.NotificationSuccess, fmt.Sprintf("Added %q", value))
	return nil
}

// optionScope returns the parent and language a new entry of kind is created
// under. Must be called with mu held.
func (c *Composer) optionScope(kind domain.EntityKind) (parentID, languageID string, err error) {
	switch kind {
	case domain.EntityKindSkill, domain.EntityKindVocabulary:
		return "", "", nil
	case domain.EntityKindSubSkill:
		parentID = firstParent(c.skills)
		if parentID == "" {
			return "", "", domain.NewValidationError("skill", "create a skill first")
		}
		return parentID, c.languageID, nil
	case domain.EntityKindGrammarType:
		languageID = c.scopeLanguage()
		if languageID == "" {
			return "", "", domain.NewValidationError("language", "select a language first")
		}
		return "", languageID, nil
	case domain.EntityKindSubGrammarType:
		parentID = firstParent(c.grammar)
		if parentID == "" {
			return "", "", domain.NewValidationError("grammar", "create a grammar type first")
		}
		languageID = c.scopeLanguage()
		if languageID == "" {
			return "", "", domain.NewValidationError("language", "select a language first")
		}
		return parentID, languageID, nil
	case domain.EntityKindSubVocabulary:
		parentID = firstParent(c.vocabulary)
		if parentID == "" {
			return "", "", domain.NewValidationError("vocabulary", "create a vocabulary first")
		}
		return parentID, "", nil
	}
	return "", "", domain.NewValidationError("kind", fmt.Sprintf("options of kind %q cannot be added here", kind))
}

func (c *Composer) scopeLanguage() string {
	if c.languageID != "" {
		return c.languageID
	}
	return c.store.DefaultLanguageID()
}

func firstParent[T domain.Tag](v *hierarchy.View[T]) string {
	if ids := v.SelectedIDs(); len(ids) > 0 {
		return ids[0]
	}
	if ids := v.VisibleIDs(); len(ids) > 0 {
		return ids[0]
	}
	return ""
}

// addSelection selects value in addition to the current selection when it
// is visible.
func addSelection[T domain.Tag](v *hierarchy.View[T], value string) {
	_ = v.Select(append(v.SelectedIDs(), value))
}
