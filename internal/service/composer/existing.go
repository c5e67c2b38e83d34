package composer

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
	"github.com/heartmarshall/roleplay-admin/internal/service/hierarchy"
)

// LoadExisting fills the form from the stored activity of the active
// language. It reports whether an activity was found. Stored ids that no
// longer exist, or are not visible under the language, are left out and
// logged.
func (c *Composer) LoadExisting(ctx context.Context) (bool, error) {
	c.mu.Lock()
	languageID := c.languageID
	c.mu.Unlock()

	if languageID == "" {
		return false, domain.NewValidationError("language", "select a known language first")
	}

	activity := c.catalog.GetRoleplayActivityByLanguage(ctx, c.roleplayID, languageID)
	if activity == nil {
		return false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.themes = domain.NormalizeThemes(activity.Theme)
	if activity.DurationAprox >= 1 {
		c.duration = activity.DurationAprox
	}

	dropped := 0
	dropped += restore(c.skills, activity.SkillMain)
	dropped += restore(c.grammar, activity.Grammar)
	dropped += restore(c.vocabulary, activity.Vocabulary)
	c.refilter()
	dropped += restore(c.subSkills, activity.SubSkill)
	dropped += restore(c.subGrammar, activity.SubGrammar)
	dropped += restore(c.subVocab, activity.SubVocabulary)

	if dropped > 0 {
		c.log.WarnContext(ctx, "stored activity references unavailable tags",
			slog.String("language_id", languageID),
			slog.Int("dropped", dropped),
		)
	}
	return true, nil
}

// restore selects the visible entities among ids and returns how many ids
// were left out.
func restore[T domain.Tag](v *hierarchy.View[T], ids []string) int {
	visible := hierarchy.Prune(ids, v.Visible())
	_ = v.Select(visible)
	return len(ids) - len(visible)
}
