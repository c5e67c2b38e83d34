package rest

import (
	"net/http"

	"github.com/heartmarshall/roleplay-admin/internal/transport/middleware"
)

// Handlers groups every HTTP handler served by the router.
type Handlers struct {
	Health        *HealthHandler
	Roleplays     *RoleplayHandler
	Catalog       *CatalogRoleplayHandler
	Tags          *TagHandler
	Auth          *AuthHandler
	Console       *ConsoleHandler
	Activity      *ActivityHandler
	Notifications *NotificationHandler
}

// NewRouter registers every route. global wraps the whole mux; login wraps
// only the login route (rate limiting). Admin routes require an admin token,
// which global is expected to resolve.
func NewRouter(h Handlers, global, login middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/login", login(http.HandlerFunc(h.Auth.Login)))

	mux.HandleFunc("GET /api/roleplay-languages", h.Roleplays.RoleplayLanguage)
	mux.HandleFunc("GET /api/roleplays", h.Roleplays.ListRoleplays)

	admin := func(pattern string, f http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireAdmin(f))
	}

	c := h.Console
	admin("GET /admin/console", c.State)
	admin("POST /admin/console/open", c.Open)
	admin("POST /admin/console/close", c.Close)
	admin("PUT /admin/console/filters", c.SetFilters)
	admin("POST /admin/console/{kind}", c.Create)
	admin("POST /admin/console/{kind}/{id}/edit", c.BeginEdit)
	admin("PUT /admin/console/{kind}/{id}", c.SaveEdit)
	admin("DELETE /admin/console/{kind}/edit", c.CancelEdit)
	admin("POST /admin/console/{kind}/{id}/delete", c.RequestDelete)
	admin("POST /admin/console/{kind}/delete/confirm", c.ConfirmDelete)
	admin("DELETE /admin/console/{kind}/delete", c.CancelDelete)

	admin("GET /admin/tags/{kind}", h.Tags.List)
	admin("GET /admin/roleplays", h.Catalog.List)
	admin("GET /admin/roleplays/{id}", h.Catalog.Get)

	a := h.Activity
	admin("GET /admin/roleplays/{id}/activity", a.Get)
	admin("PUT /admin/roleplays/{id}/activity", a.Update)
	admin("DELETE /admin/roleplays/{id}/activity", a.Discard)
	admin("POST /admin/roleplays/{id}/activity/options/{kind}", a.AddOption)
	admin("POST /admin/roleplays/{id}/activity/save", a.Save)

	admin("GET /admin/notifications", h.Notifications.List)
	admin("DELETE /admin/notifications/{id}", h.Notifications.Dismiss)

	return global(mux)
}
