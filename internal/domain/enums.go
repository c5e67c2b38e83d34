package domain

// EntityKind names a catalog collection. Its value is also the REST
// resource path under the whiteboard-activities API.
type EntityKind string

const (
	EntityKindLanguage       EntityKind = "languages"
	EntityKindSkill          EntityKind = "skills"
	EntityKindSubSkill       EntityKind = "sub-skills"
	EntityKindGrammarType    EntityKind = "grammar-types"
	EntityKindSubGrammarType EntityKind = "sub-grammar-types"
	EntityKindVocabulary     EntityKind = "vocabularies"
	EntityKindSubVocabulary  EntityKind = "sub-vocabularies"
)

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindLanguage, EntityKindSkill, EntityKindSubSkill,
		EntityKindGrammarType, EntityKindSubGrammarType,
		EntityKindVocabulary, EntityKindSubVocabulary:
		return true
	}
	return false
}

// Parent returns the kind this kind hangs under, or "" for top-level kinds.
func (k EntityKind) Parent() EntityKind {
	switch k {
	case EntityKindSubSkill:
		return EntityKindSkill
	case EntityKindSubGrammarType:
		return EntityKindGrammarType
	case EntityKindSubVocabulary:
		return EntityKindVocabulary
	}
	return ""
}

// AllEntityKinds lists every catalog collection in load order.
func AllEntityKinds() []EntityKind {
	return []EntityKind{
		EntityKindLanguage,
		EntityKindSkill,
		EntityKindSubSkill,
		EntityKindGrammarType,
		EntityKindSubGrammarType,
		EntityKindVocabulary,
		EntityKindSubVocabulary,
	}
}

// NotificationKind is the tone of an admin-facing notification.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationWarning NotificationKind = "warning"
	NotificationInfo    NotificationKind = "info"
)

func (k NotificationKind) String() string { return string(k) }

func (k NotificationKind) IsValid() bool {
	switch k {
	case NotificationSuccess, NotificationError, NotificationWarning, NotificationInfo:
		return true
	}
	return false
}

// LanguageLevel is a CEFR level used to filter roleplays.
type LanguageLevel string

const (
	LevelA1 LanguageLevel = "A1"
	LevelA2 LanguageLevel = "A2"
	LevelB1 LanguageLevel = "B1"
	LevelB2 LanguageLevel = "B2"
	LevelC1 LanguageLevel = "C1"
	LevelC2 LanguageLevel = "C2"
)

func (l LanguageLevel) String() string { return string(l) }

func (l LanguageLevel) IsValid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	}
	return false
}
