package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
	"github.com/heartmarshall/roleplay-admin/internal/service/admin"
)

type consoleService interface {
	Open(ctx context.Context)
	Close()
	State() admin.State
	SetFilters(in admin.FilterInput) error
	Create(ctx context.Context, kind domain.EntityKind, in admin.CreateInput) error
	BeginEdit(kind domain.EntityKind, id string) error
	CancelEdit(kind domain.EntityKind)
	SaveEdit(ctx context.Context, kind domain.EntityKind, value string) error
	RequestDelete(kind domain.EntityKind, id string) error
	CancelDelete(kind domain.EntityKind)
	ConfirmDelete(ctx context.Context, kind domain.EntityKind) error
}

// ConsoleHandler exposes the tag administration console. Every action
// answers with the console state after it ran.
type ConsoleHandler struct {
	svc consoleService
	log *slog.Logger
}

// NewConsoleHandler creates a ConsoleHandler.
func NewConsoleHandler(svc consoleService, logger *slog.Logger) *ConsoleHandler {
	return &ConsoleHandler{svc: svc, log: logger.With("handler", "console")}
}

// State handles GET /admin/console.
func (h *ConsoleHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.State())
}

// Open handles POST /admin/console/open.
func (h *ConsoleHandler) Open(w http.ResponseWriter, r *http.Request) {
	h.svc.Open(r.Context())
	writeJSON(w, http.StatusOK, h.svc.State())
}

// Close handles POST /admin/console/close.
func (h *ConsoleHandler) Close(w http.ResponseWriter, r *http.Request) {
	h.svc.Close()
	writeJSON(w, http.StatusOK, h.svc.State())
}

type filtersRequest struct {
	Skill           *string                      `json:"skill"`
	Grammar         *string                      `json:"grammar"`
	Vocabulary      *string                      `json:"vocabulary"`
	GrammarLanguage *string                      `json:"grammarLanguage"`
	Search          map[domain.EntityKind]string `json:"search"`
}

// SetFilters handles PUT /admin/console/filters.
func (h *ConsoleHandler) SetFilters(w http.ResponseWriter, r *http.Request) {
	var req filtersRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	err := h.svc.SetFilters(admin.FilterInput{
		Skill:           req.Skill,
		Grammar:         req.Grammar,
		Vocabulary:      req.Vocabulary,
		GrammarLanguage: req.GrammarLanguage,
		Search:          req.Search,
	})
	h.respond(w, r, err)
}

type createRequest struct {
	Value    string `json:"value"`
	Language string `json:"language"`
}

// Create handles POST /admin/console/{kind}.
func (h *ConsoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	var req createRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	err := h.svc.Create(r.Context(), kind, admin.CreateInput{Value: req.Value, Language: req.Language})
	h.respondStatus(w, r, http.StatusCreated, err)
}

// BeginEdit handles POST /admin/console/{kind}/{id}/edit.
func (h *ConsoleHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	h.respond(w, r, h.svc.BeginEdit(kind, r.PathValue("id")))
}

type editRequest struct {
	Value string `json:"value"`
}

// SaveEdit handles PUT /admin/console/{kind}/{id}. The row is put into
// editing first, so a single request renames it.
func (h *ConsoleHandler) SaveEdit(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	var req editRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.BeginEdit(kind, r.PathValue("id")); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	h.respond(w, r, h.svc.SaveEdit(r.Context(), kind, req.Value))
}

// CancelEdit handles DELETE /admin/console/{kind}/edit.
func (h *ConsoleHandler) CancelEdit(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	h.svc.CancelEdit(kind)
	h.respond(w, r, nil)
}

// RequestDelete handles POST /admin/console/{kind}/{id}/delete.
func (h *ConsoleHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	h.respond(w, r, h.svc.RequestDelete(kind, r.PathValue("id")))
}

// ConfirmDelete handles POST /admin/console/{kind}/delete/confirm.
func (h *ConsoleHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	h.respond(w, r, h.svc.ConfirmDelete(r.Context(), kind))
}

// CancelDelete handles DELETE /admin/console/{kind}/delete.
func (h *ConsoleHandler) CancelDelete(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	h.svc.CancelDelete(kind)
	h.respond(w, r, nil)
}

func (h *ConsoleHandler) kind(w http.ResponseWriter, r *http.Request) (domain.EntityKind, bool) {
	kind := domain.EntityKind(r.PathValue("kind"))
	if !kind.IsValid() {
		writeDomainError(w, r, h.log, domain.NewValidationError("kind", "unknown collection"))
		return "", false
	}
	return kind, true
}

func (h *ConsoleHandler) respond(w http.ResponseWriter, r *http.Request, err error) {
	h.respondStatus(w, r, http.StatusOK, err)
}

func (h *ConsoleHandler) respondStatus(w http.ResponseWriter, r *http.Request, status int, err error) {
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, status, h.svc.State())
}
