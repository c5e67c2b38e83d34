// Package hierarchy derives the visible parts of the tag hierarchy
// (skill → sub-skill, grammar → sub-grammar, vocabulary → sub-vocabulary)
// under a language filter and a parent selection, and keeps selections
// inside what is visible.
package hierarchy

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// Filter narrows a child collection.
type Filter struct {
	// ParentIDs restricts children to these parents. Empty means any parent.
	ParentIDs []string
	// LanguageID restricts scoped children to this language. Empty means any.
	LanguageID string
	// DefaultLanguageID is the id of the DEFAULT language record.
	DefaultLanguageID string
}

// LanguageMatches reports whether a tag scoped to lang passes the filter.
// Unscoped and DEFAULT-scoped tags pass every language filter.
func (f Filter) LanguageMatches(lang string) bool {
	switch {
	case lang == "", f.LanguageID == "":
		return true
	case lang == f.LanguageID:
		return true
	case f.DefaultLanguageID != "" && lang == f.DefaultLanguageID:
		return true
	}
	return domain.IsDefaultLanguage(lang)
}

// ParentMatches reports whether a child of parentID passes the filter.
func (f Filter) ParentMatches(parentID string) bool {
	return len(f.ParentIDs) == 0 || slices.Contains(f.ParentIDs, parentID)
}

// Visible returns the items that pass f, in input order. Items that are not
// Scoped ignore the language filter; items that are not Child ignore the
// parent filter. The result is always a subset of items.
func Visible[T domain.Tag](items []T, f Filter) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if s, ok := any(item).(domain.Scoped); ok && !f.LanguageMatches(s.ScopeLanguage()) {
			continue
		}
		if c, ok := any(item).(domain.Child); ok && !f.ParentMatches(c.ParentID()) {
			continue
		}
		result = append(result, item)
	}
	return result
}

// ResolveLanguageID maps a language name or code to its record id.
// The language field is matched case-insensitively first, then the id exactly.
// Returns "" when nothing matches.
func ResolveLanguageID(langs []domain.Language, nameOrCode string) string {
	needle := strings.TrimSpace(nameOrCode)
	if needle == "" {
		return ""
	}
	for _, l := range langs {
		if strings.EqualFold(strings.TrimSpace(l.Language), needle) {
			return l.ID
		}
	}
	for _, l := range langs {
		if l.ID == needle {
			return l.ID
		}
	}
	return ""
}

// DefaultLanguageID returns the id of the DEFAULT language record, or "".
func DefaultLanguageID(langs []domain.Language) string {
	for _, l := range langs {
		if l.IsDefault() {
			return l.ID
		}
	}
	return ""
}

// Prune keeps the selected values that are still visible, in their original
// order. A selection matches a visible item by display value or by id.
func Prune[T domain.Tag](selected []string, visible []T) []string {
	keep := make(map[string]struct{}, len(visible)*2)
	for _, item := range visible {
		keep[item.TagValue()] = struct{}{}
		keep[item.TagID()] = struct{}{}
	}

	result := make([]string, 0, len(selected))
	for _, s := range selected {
		if _, ok := keep[s]; ok {
			result = append(result, s)
		}
	}
	return result
}

// SortByValue returns a copy of items ordered by display value using a
// case-insensitive collation. Equal values keep their input order.
func SortByValue[T domain.Tag](items []T) []T {
	col := collate.New(language.Und, collate.IgnoreCase)
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return col.CompareString(a.TagValue(), b.TagValue())
	})
	return out
}

// Search keeps the items whose display value contains query, ignoring case.
func Search[T domain.Tag](items []T, query string) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if domain.MatchesSearch(item.TagValue(), query) {
			result = append(result, item)
		}
	}
	return result
}

// Values returns the display values of items.
func Values[T domain.Tag](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.TagValue()
	}
	return out
}
