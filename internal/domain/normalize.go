package domain

import (
	"strings"
)

// NormalizeText prepares text for search comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MatchesSearch reports whether value contains query, ignoring case and
// surrounding whitespace. An empty query matches everything.
func MatchesSearch(value, query string) bool {
	q := NormalizeText(query)
	if q == "" {
		return true
	}
	return strings.Contains(NormalizeText(value), q)
}

// NormalizeThemes trims every theme, drops empty ones and removes exact
// duplicates, keeping first occurrences in order.
func NormalizeThemes(themes []string) []string {
	result := make([]string, 0, len(themes))
	seen := make(map[string]struct{}, len(themes))
	for _, t := range themes {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return result
}
