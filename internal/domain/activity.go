package domain

// RoleplayActivity is the stored tag set of one (roleplay, language) pair.
// Every list field holds entity ids, not display values.
type RoleplayActivity struct {
	ID            string   `json:"id"`
	RolePlayID    string   `json:"rolePlayId"`
	Language      string   `json:"language"`
	Theme         []string `json:"theme"`
	SkillMain     []string `json:"skillMain"`
	SubSkill      []string `json:"subSkill"`
	Grammar       []string `json:"grammar"`
	SubGrammar    []string `json:"subGrammar"`
	Vocabulary    []string `json:"vocabulary"`
	SubVocabulary []string `json:"subVocabulary"`
	DurationAprox int      `json:"durationAprox"`
}

// ActivityPayload is the upsert body sent to the catalog for a roleplay activity.
type ActivityPayload struct {
	RolePlayID    string   `json:"rolePlayId"`
	Language      string   `json:"language"`
	Theme         []string `json:"theme"`
	SkillMain     []string `json:"skillMain"`
	SubSkill      []string `json:"subSkill"`
	Grammar       []string `json:"grammar"`
	SubGrammar    []string `json:"subGrammar"`
	Vocabulary    []string `json:"vocabulary"`
	SubVocabulary []string `json:"subVocabulary"`
	DurationAprox int      `json:"durationAprox"`
}

// TagSelection is a roleplay's tag selection expressed as display values.
type TagSelection struct {
	Language      string   `json:"language"`
	Themes        []string `json:"themes"`
	SkillMain     []string `json:"skillMain"`
	SubSkill      []string `json:"subSkill"`
	Grammar       []string `json:"grammar"`
	SubGrammar    []string `json:"subGrammar"`
	Vocabulary    []string `json:"vocabulary"`
	SubVocabulary []string `json:"subVocabulary"`
	DurationAprox int      `json:"durationAprox"`
}
