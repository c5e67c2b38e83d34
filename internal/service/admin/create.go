package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// CreateInput is a new catalog entry.
type CreateInput struct {
	Value string
	// Language optionally scopes a sub-skill, and overrides the grammar
	// language filter for grammar kinds. Name or id.
	Language string
}

// Validate checks the fields that do not depend on console state.
func (i CreateInput) Validate() error {
	if strings.TrimSpace(i.Value) == "" {
		return domain.NewValidationError("value", "required")
	}
	return nil
}

// Create adds an entry of kind. Children are created under the active parent
// filter, which must be set; grammar kinds need a language. The console is
// reloaded in full before Create returns.
func (s *Service) Create(ctx context.Context, kind domain.EntityKind, in CreateInput) error {
	if err := validKind(kind); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}
	value := strings.TrimSpace(in.Value)

	s.mu.Lock()
	if err := s.begin(kind); err != nil {
		s.mu.Unlock()
		return err
	}
	parentID, languageID, err := s.createScope(kind, in)
	s.mu.Unlock()
	defer s.end(kind)

	if err != nil {
		s.notify.Push(domain.NotificationWarning, warningMessage(err))
		return err
	}

	var ok bool
	switch kind {
	case domain.EntityKindLanguage:
		ok = s.catalog.CreateLanguage(ctx, value)
	case domain.EntityKindSkill:
		ok = s.catalog.CreateSkill(ctx, value)
	case domain.EntityKindSubSkill:
		ok = s.catalog.CreateSubSkill(ctx, value, parentID, languageID)
	case domain.EntityKindGrammarType:
		ok = s.catalog.CreateGrammarType(ctx, value, languageID)
	case domain.EntityKindSubGrammarType:
		ok = s.catalog.CreateSubGrammarType(ctx, value, parentID, languageID)
	case domain.EntityKindVocabulary:
		ok = s.catalog.CreateVocabulary(ctx, value)
	case domain.EntityKindSubVocabulary:
		ok = s.catalog.CreateSubVocabulary(ctx, value, parentID)
	}
	if !ok {
		s.notify.Push(domain.NotificationError, fmt.Sprintf("Could not create %q", value))
		return fmt.Errorf("create %s: %w", kind, domain.ErrCatalogUnavailable)
	}

	s.reload(ctx)
	s.log.InfoContext(ctx, "tag created", slog.String("kind", kind.String()), slog.String("value", value))
	s.notify.Push(domain.NotificationSuccess, fmt.Sprintf("Created %q", value))
	return nil
}

// createScope resolves the parent and language of a new entry.
// Must be called with mu held.
func (s *Service) createScope(kind domain.EntityKind, in CreateInput) (parentID, languageID string, err error) {
	if parent := kind.Parent(); parent != "" {
		var ok bool
		parentID, ok = s.parentID(kind)
		if !ok {
			return "", "", domain.NewValidationError(parent.String(), "Select a "+singular(parent)+" first")
		}
	}

	switch kind {
	case domain.EntityKindSubSkill:
		if in.Language != "" {
			languageID = s.store.LanguageID(in.Language)
			if languageID == "" {
				return "", "", domain.NewValidationError("language", "Unknown language")
			}
		}
	case domain.EntityKindGrammarType, domain.EntityKindSubGrammarType:
		languageID = s.filters.GrammarLanguage
		if in.Language != "" {
			languageID = s.store.LanguageID(in.Language)
		}
		if languageID == "" {
			return "", "", domain.NewValidationError("language", "Select a language first")
		}
	}
	return parentID, languageID, nil
}

func singular(kind domain.EntityKind) string {
	switch kind {
	case domain.EntityKindSkill:
		return "skill"
	case domain.EntityKindGrammarType:
		return "grammar type"
	case domain.EntityKindVocabulary:
		return "vocabulary"
	}
	return strings.TrimSuffix(kind.String(), "s")
}

func warningMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 0 {
		return ve.Errors[0].Message
	}
	return err.Error()
}
