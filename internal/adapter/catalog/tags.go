package catalog

import (
	"context"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

func (c *Client) Languages(ctx context.Context) []domain.Language {
	return List[domain.Language](ctx, c, domain.EntityKindLanguage.String())
}

func (c *Client) Skills(ctx context.Context) []domain.Skill {
	return List[domain.Skill](ctx, c, domain.EntityKindSkill.String())
}

func (c *Client) SubSkills(ctx context.Context) []domain.SubSkill {
	return List[domain.SubSkill](ctx, c, domain.EntityKindSubSkill.String())
}

func (c *Client) GrammarTypes(ctx context.Context) []domain.GrammarType {
	return List[domain.GrammarType](ctx, c, domain.EntityKindGrammarType.String())
}

func (c *Client) SubGrammarTypes(ctx context.Context) []domain.SubGrammarType {
	return List[domain.SubGrammarType](ctx, c, domain.EntityKindSubGrammarType.String())
}

func (c *Client) Vocabularies(ctx context.Context) []domain.Vocabulary {
	return List[domain.Vocabulary](ctx, c, domain.EntityKindVocabulary.String())
}

func (c *Client) SubVocabularies(ctx context.Context) []domain.SubVocabulary {
	return List[domain.SubVocabulary](ctx, c, domain.EntityKindSubVocabulary.String())
}

type languageBody struct {
	Language string `json:"language"`
}

type valueBody struct {
	Value string `json:"value"`
}

type subSkillBody struct {
	Value      string `json:"value"`
	SkillID    string `json:"skillId"`
	LanguageID string `json:"languageId,omitempty"`
}

type grammarTypeBody struct {
	Value      string `json:"value"`
	LanguageID string `json:"languageId"`
}

type subGrammarTypeBody struct {
	Value         string `json:"value"`
	GrammarTypeID string `json:"grammarTypeId"`
	LanguageID    string `json:"languageId"`
}

type subVocabularyBody struct {
	Value        string `json:"value"`
	VocabularyID string `json:"vocabularyId"`
}

func (c *Client) CreateLanguage(ctx context.Context, language string) bool {
	return c.Create(ctx, domain.EntityKindLanguage.String(), languageBody{Language: language})
}

func (c *Client) CreateSkill(ctx context.Context, value string) bool {
	return c.Create(ctx, domain.EntityKindSkill.String(), valueBody{Value: value})
}

// CreateSubSkill creates a sub-skill under skillID. An empty languageID
// leaves the sub-skill unscoped.
func (c *Client) CreateSubSkill(ctx context.Context, value, skillID, languageID string) bool {
	return c.Create(ctx, domain.EntityKindSubSkill.String(), subSkillBody{
		Value:      value,
		SkillID:    skillID,
		LanguageID: languageID,
	})
}

func (c *Client) CreateGrammarType(ctx context.Context, value, languageID string) bool {
	return c.Create(ctx, domain.EntityKindGrammarType.String(), grammarTypeBody{
		Value:      value,
		LanguageID: languageID,
	})
}

func (c *Client) CreateSubGrammarType(ctx context.Context, value, grammarTypeID, languageID string) bool {
	return c.Create(ctx, domain.EntityKindSubGrammarType.String(), subGrammarTypeBody{
		Value:         value,
		GrammarTypeID: grammarTypeID,
		LanguageID:    languageID,
	})
}

func (c *Client) CreateVocabulary(ctx context.Context, value string) bool {
	return c.Create(ctx, domain.EntityKindVocabulary.String(), valueBody{Value: value})
}

func (c *Client) CreateSubVocabulary(ctx context.Context, value, vocabularyID string) bool {
	return c.Create(ctx, domain.EntityKindSubVocabulary.String(), subVocabularyBody{
		Value:        value,
		VocabularyID: vocabularyID,
	})
}

// UpdateTag renames the entity id of the given kind. Languages carry their
// display value in "language", every other kind in "value".
func (c *Client) UpdateTag(ctx context.Context, kind domain.EntityKind, id, value string) bool {
	if kind == domain.EntityKindLanguage {
		return c.Update(ctx, kind.String(), id, languageBody{Language: value})
	}
	return c.Update(ctx, kind.String(), id, valueBody{Value: value})
}

// RemoveTag deletes the entity id of the given kind.
func (c *Client) RemoveTag(ctx context.Context, kind domain.EntityKind, id string) bool {
	return c.Remove(ctx, kind.String(), id)
}
