package composer

import (
	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// UpdateInput replaces parts of the form. Nil fields are left unchanged.
type UpdateInput struct {
	Language      *string
	Themes        []string
	SkillMain     []string
	SubSkill      []string
	Grammar       []string
	SubGrammar    []string
	Vocabulary    []string
	SubVocabulary []string
	DurationAprox *int
}

// Validate checks the scalar fields. Selections are checked against the
// visible options when applied.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.DurationAprox != nil && *i.DurationAprox < 1 {
		errs = append(errs, domain.FieldError{Field: "durationAprox", Message: "must be at least 1"})
	}
	if i.Language != nil && domain.IsDefaultLanguage(*i.Language) {
		errs = append(errs, domain.FieldError{Field: "language", Message: "DEFAULT is not a selectable language"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Update applies in in dependency order: language, then each parent before
// its children, so a child selection is checked against the new parents.
// The first failing step aborts; earlier steps stay applied.
func (c *Composer) Update(in UpdateInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	if in.Language != nil {
		if err := c.SetLanguage(*in.Language); err != nil {
			return err
		}
	}
	if in.Themes != nil {
		c.SetThemes(in.Themes)
	}
	if in.DurationAprox != nil {
		if err := c.SetDuration(*in.DurationAprox); err != nil {
			return err
		}
	}

	steps := []struct {
		values []string
		apply  func([]string) error
	}{
		{in.SkillMain, c.SelectSkills},
		{in.SubSkill, c.SelectSubSkills},
		{in.Grammar, c.SelectGrammar},
		{in.SubGrammar, c.SelectSubGrammar},
		{in.Vocabulary, c.SelectVocabulary},
		{in.SubVocabulary, c.SelectSubVocabulary},
	}
	for _, s := range steps {
		if s.values == nil {
			continue
		}
		if err := s.apply(s.values); err != nil {
			return err
		}
	}
	return nil
}
