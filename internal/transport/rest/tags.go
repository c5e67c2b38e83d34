package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
	"github.com/heartmarshall/roleplay-admin/internal/service/hierarchy"
)

type tagLister interface {
	Languages(ctx context.Context) []domain.Language
	Skills(ctx context.Context) []domain.Skill
	SubSkills(ctx context.Context) []domain.SubSkill
	GrammarTypes(ctx context.Context) []domain.GrammarType
	SubGrammarTypes(ctx context.Context) []domain.SubGrammarType
	Vocabularies(ctx context.Context) []domain.Vocabulary
	SubVocabularies(ctx context.Context) []domain.SubVocabulary
}

// TagHandler serves one unfiltered catalog collection, read straight from
// the catalog.
type TagHandler struct {
	catalog tagLister
	log     *slog.Logger
}

func NewTagHandler(catalog tagLister, logger *slog.Logger) *TagHandler {
	return &TagHandler{catalog: catalog, log: logger.With("handler", "tags")}
}

// List handles GET /admin/tags/{kind}. Items are sorted by display value.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var items any
	switch domain.EntityKind(r.PathValue("kind")) {
	case domain.EntityKindLanguage:
		items = hierarchy.SortByValue(h.catalog.Languages(ctx))
	case domain.EntityKindSkill:
		items = hierarchy.SortByValue(h.catalog.Skills(ctx))
	case domain.EntityKindSubSkill:
		items = hierarchy.SortByValue(h.catalog.SubSkills(ctx))
	case domain.EntityKindGrammarType:
		items = hierarchy.SortByValue(h.catalog.GrammarTypes(ctx))
	case domain.EntityKindSubGrammarType:
		items = hierarchy.SortByValue(h.catalog.SubGrammarTypes(ctx))
	case domain.EntityKindVocabulary:
		items = hierarchy.SortByValue(h.catalog.Vocabularies(ctx))
	case domain.EntityKindSubVocabulary:
		items = hierarchy.SortByValue(h.catalog.SubVocabularies(ctx))
	default:
		writeDomainError(w, r, h.log, domain.NewValidationError("kind", "unknown collection"))
		return
	}
	writeJSON(w, http.StatusOK, items)
}
