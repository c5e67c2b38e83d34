package domain

import "strings"

// Roleplay is an agent from the external roleplay catalog. Its shape is owned
// by that catalog; only the fields the console reads are declared.
type Roleplay struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Image         string   `json:"image,omitempty"`
	Status        string   `json:"status,omitempty"`
	Language      string   `json:"language,omitempty"`
	LanguageLevel string   `json:"languageLevel,omitempty"`
	SystemPrompt  string   `json:"systemPrompt,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	SkillMain     []string `json:"skillMain,omitempty"`
	SubSkill      []string `json:"subSkill,omitempty"`
	Grammar       []string `json:"grammar,omitempty"`
	SubGrammar    []string `json:"subgrammar,omitempty"`
}

// RoleplayLanguage holds the per-language context of a roleplay.
type RoleplayLanguage struct {
	ID             string `json:"id"`
	RoleID         string `json:"roleId"`
	Language       string `json:"language"`
	Description    string `json:"description,omitempty"`
	StudentContext string `json:"studentContext,omitempty"`
}

// RoleplayFilter narrows a roleplay listing by name and CEFR level.
type RoleplayFilter struct {
	Query string
	Level LanguageLevel
}

// FilterRoleplays returns roleplays whose name contains the query
// (case-insensitive) and whose level matches, when those are set.
func FilterRoleplays(roleplays []Roleplay, f RoleplayFilter) []Roleplay {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	result := make([]Roleplay, 0, len(roleplays))
	for _, rp := range roleplays {
		if query != "" && !strings.Contains(strings.ToLower(rp.Name), query) {
			continue
		}
		if f.Level != "" && !strings.EqualFold(rp.LanguageLevel, string(f.Level)) {
			continue
		}
		result = append(result, rp)
	}
	return result
}
