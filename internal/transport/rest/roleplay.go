package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

type roleplayStore interface {
	FindByRoleAndLanguage(ctx context.Context, roleID uuid.UUID, language string) (*domain.RoleplayLanguage, error)
	ListAgents(ctx context.Context) ([]domain.Roleplay, error)
}

// RoleplayHandler serves public roleplay lookups from the document store.
type RoleplayHandler struct {
	store roleplayStore
	log   *slog.Logger
}

// NewRoleplayHandler creates a RoleplayHandler.
func NewRoleplayHandler(store roleplayStore, logger *slog.Logger) *RoleplayHandler {
	return &RoleplayHandler{store: store, log: logger.With("handler", "roleplay")}
}

// RoleplayLanguage handles GET /api/roleplay-languages?roleId=&language=.
func (h *RoleplayHandler) RoleplayLanguage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rawID := strings.TrimSpace(q.Get("roleId"))
	language := strings.TrimSpace(q.Get("language"))
	if rawID == "" || language == "" {
		writeError(w, http.StatusBadRequest, "roleId and language are required")
		return
	}
	roleID, err := uuid.Parse(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "roleId must be a valid UUID")
		return
	}

	doc, err := h.store.FindByRoleAndLanguage(r.Context(), roleID, language)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "no information for this roleplay and language")
		return
	case err != nil:
		h.log.ErrorContext(r.Context(), "find roleplay language",
			slog.String("role_id", roleID.String()),
			slog.String("language", language),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "could not load the language information")
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// ListRoleplays handles GET /api/roleplays?q=&level=.
func (h *RoleplayHandler) ListRoleplays(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	level := domain.LanguageLevel(strings.ToUpper(strings.TrimSpace(q.Get("level"))))
	if level != "" && !level.IsValid() {
		writeDomainError(w, r, h.log, domain.NewValidationError("level", "must be one of A1, A2, B1, B2, C1, C2"))
		return
	}

	agents, err := h.store.ListAgents(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.FilterRoleplays(agents, domain.RoleplayFilter{
		Query: q.Get("q"),
		Level: level,
	}))
}

type roleplayCatalog interface {
	Roleplays(ctx context.Context) []domain.Roleplay
	Roleplay(ctx context.Context, id string) *domain.Roleplay
}

// CatalogRoleplayHandler serves roleplays as the remote catalog knows them.
// The catalog degrades failures to empty results, so these routes never 5xx.
type CatalogRoleplayHandler struct {
	catalog roleplayCatalog
	log     *slog.Logger
}

// NewCatalogRoleplayHandler creates a CatalogRoleplayHandler.
func NewCatalogRoleplayHandler(catalog roleplayCatalog, logger *slog.Logger) *CatalogRoleplayHandler {
	return &CatalogRoleplayHandler{catalog: catalog, log: logger.With("handler", "catalog_roleplay")}
}

// List handles GET /admin/roleplays?q=&level=.
func (h *CatalogRoleplayHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	level := domain.LanguageLevel(strings.ToUpper(strings.TrimSpace(q.Get("level"))))
	if level != "" && !level.IsValid() {
		writeDomainError(w, r, h.log, domain.NewValidationError("level", "must be one of A1, A2, B1, B2, C1, C2"))
		return
	}
	writeJSON(w, http.StatusOK, domain.FilterRoleplays(h.catalog.Roleplays(r.Context()), domain.RoleplayFilter{
		Query: q.Get("q"),
		Level: level,
	}))
}

// Get handles GET /admin/roleplays/{id}.
func (h *CatalogRoleplayHandler) Get(w http.ResponseWriter, r *http.Request) {
	rp := h.catalog.Roleplay(r.Context(), r.PathValue("id"))
	if rp == nil {
		writeError(w, http.StatusNotFound, "roleplay not found")
		return
	}
	writeJSON(w, http.StatusOK, rp)
}
