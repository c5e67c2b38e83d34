package composer

import (
	"slices"
	"strings"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// AddTheme appends a trimmed theme. Exact duplicates are ignored.
func (c *Composer) AddTheme(theme string) error {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		return domain.NewValidationError("theme", "required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !slices.Contains(c.themes, theme) {
		c.themes = append(c.themes, theme)
	}
	return nil
}

// RemoveTheme removes one theme and reports whether it was present.
func (c *Composer) RemoveTheme(theme string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.Index(c.themes, theme)
	if i < 0 {
		return false
	}
	c.themes = slices.Delete(c.themes, i, i+1)
	return true
}

// SetThemes replaces every theme, trimming and deduplicating.
func (c *Composer) SetThemes(themes []string) {
	normalized := domain.NormalizeThemes(themes)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.themes = normalized
}

// SetDuration sets the approximate activity length in minutes.
func (c *Composer) SetDuration(minutes int) error {
	if minutes < 1 {
		return domain.NewValidationError("durationAprox", "must be at least 1")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.duration = minutes
	return nil
}
