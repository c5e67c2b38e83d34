package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
	"github.com/heartmarshall/roleplay-admin/internal/service/composer"
)

type composerRegistry interface {
	Open(ctx context.Context, roleplayID, language string) (*composer.Composer, error)
	Close(roleplayID string) bool
}

// ActivityHandler exposes the per-roleplay activity composer.
type ActivityHandler struct {
	registry composerRegistry
	log      *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(registry composerRegistry, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{registry: registry, log: logger.With("handler", "activity")}
}

// Get handles GET /admin/roleplays/{id}/activity?language=.
// The form is opened on first access; a language switches it and loads that
// language's stored activity.
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.registry.Open(r.Context(), r.PathValue("id"), r.URL.Query().Get("language"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c.State())
}

type activityRequest struct {
	Language      *string  `json:"language"`
	Themes        []string `json:"themes"`
	SkillMain     []string `json:"skillMain"`
	SubSkill      []string `json:"subSkill"`
	Grammar       []string `json:"grammar"`
	SubGrammar    []string `json:"subGrammar"`
	Vocabulary    []string `json:"vocabulary"`
	SubVocabulary []string `json:"subVocabulary"`
	DurationAprox *int     `json:"durationAprox"`
}

// Update handles PUT /admin/roleplays/{id}/activity.
func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	c, err := h.registry.Open(r.Context(), r.PathValue("id"), "")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	err = c.Update(composer.UpdateInput{
		Language:      req.Language,
		Themes:        req.Themes,
		SkillMain:     req.SkillMain,
		SubSkill:      req.SubSkill,
		Grammar:       req.Grammar,
		SubGrammar:    req.SubGrammar,
		Vocabulary:    req.Vocabulary,
		SubVocabulary: req.SubVocabulary,
		DurationAprox: req.DurationAprox,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c.State())
}

type optionRequest struct {
	Value string `json:"value"`
}

// AddOption handles POST /admin/roleplays/{id}/activity/options/{kind}.
func (h *ActivityHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	kind := domain.EntityKind(r.PathValue("kind"))
	if !kind.IsValid() {
		writeDomainError(w, r, h.log, domain.NewValidationError("kind", "unknown collection"))
		return
	}
	var req optionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	c, err := h.registry.Open(r.Context(), r.PathValue("id"), "")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := c.AddOption(r.Context(), kind, req.Value); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, c.State())
}

type saveResponse struct {
	Selection domain.TagSelection `json:"selection"`
	State     composer.State      `json:"state"`
}

// Save handles POST /admin/roleplays/{id}/activity/save.
func (h *ActivityHandler) Save(w http.ResponseWriter, r *http.Request) {
	c, err := h.registry.Open(r.Context(), r.PathValue("id"), "")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	selection, err := c.Save(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, saveResponse{Selection: selection, State: c.State()})
}

// Discard handles DELETE /admin/roleplays/{id}/activity.
func (h *ActivityHandler) Discard(w http.ResponseWriter, r *http.Request) {
	if !h.registry.Close(r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "no open activity form")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
