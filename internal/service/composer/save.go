package composer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// ErrSaveInProgress is returned when Save is called while a save is running.
var ErrSaveInProgress = fmt.Errorf("save already in progress: %w", domain.ErrConflict)

// Save resolves the selection to ids and upserts the activity of the active
// (roleplay, language). Missing preconditions produce a warning notification
// and no request. The saved selection is returned in display values and
// passed to the OnSaved callback.
func (c *Composer) Save(ctx context.Context) (domain.TagSelection, error) {
	c.mu.Lock()
	if c.saving {
		c.mu.Unlock()
		return domain.TagSelection{}, ErrSaveInProgress
	}

	if err := c.checkSaveable(); err != nil {
		c.mu.Unlock()
		c.notify.Push(domain.NotificationWarning, warningMessage(err))
		return domain.TagSelection{}, err
	}

	payload := c.payload()
	selection := c.selection()
	c.saving = true
	c.mu.Unlock()

	ok := c.catalog.CreateActivity(ctx, payload)

	c.mu.Lock()
	c.saving = false
	c.mu.Unlock()

	if !ok {
		c.log.ErrorContext(ctx, "save activity failed", slog.String("language_id", payload.Language))
		c.notify.Push(domain.NotificationError, "Could not save the activity")
		return domain.TagSelection{}, fmt.Errorf("save activity: %w", domain.ErrCatalogUnavailable)
	}

	c.log.InfoContext(ctx, "activity saved", slog.String("language_id", payload.Language))
	c.notify.Push(domain.NotificationSuccess, "Activity saved")
	if c.onSaved != nil {
		c.onSaved(selection)
	}
	return selection, nil
}

// Saving reports whether a save request is in flight.
func (c *Composer) Saving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saving
}

// checkSaveable must be called with mu held.
func (c *Composer) checkSaveable() error {
	switch {
	case !validRoleplayID(c.roleplayID):
		return domain.NewValidationError("rolePlayId", "Roleplay is not loaded")
	case c.languageID == "":
		return domain.NewValidationError("language", "Select a language before saving")
	case len(c.themes) == 0:
		return domain.NewValidationError("theme", "Add at least one theme")
	}
	return nil
}

// payload must be called with mu held.
func (c *Composer) payload() domain.ActivityPayload {
	return domain.ActivityPayload{
		RolePlayID:    c.roleplayID,
		Language:      c.languageID,
		Theme:         append([]string{}, c.themes...),
		SkillMain:     c.skills.SelectedIDs(),
		SubSkill:      c.subSkills.SelectedIDs(),
		Grammar:       c.grammar.SelectedIDs(),
		SubGrammar:    c.subGrammar.SelectedIDs(),
		Vocabulary:    c.vocabulary.SelectedIDs(),
		SubVocabulary: c.subVocab.SelectedIDs(),
		DurationAprox: c.duration,
	}
}

// selection must be called with mu held.
func (c *Composer) selection() domain.TagSelection {
	language := c.store.LanguageName(c.languageID)
	if language == "" {
		language = c.language
	}
	return domain.TagSelection{
		Language:      language,
		Themes:        append([]string{}, c.themes...),
		SkillMain:     c.skills.Selected(),
		SubSkill:      c.subSkills.Selected(),
		Grammar:       c.grammar.Selected(),
		SubGrammar:    c.subGrammar.Selected(),
		Vocabulary:    c.vocabulary.Selected(),
		SubVocabulary: c.subVocab.Selected(),
		DurationAprox: c.duration,
	}
}

func warningMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 0 {
		return ve.Errors[0].Message
	}
	return err.Error()
}

func validRoleplayID(id string) bool {
	switch id {
	case "", "undefined", "null":
		return false
	}
	return true
}
