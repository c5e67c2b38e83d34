package rest

import (
	"net/http"

	"github.com/heartmarshall/roleplay-admin/internal/notify"
)

type notificationQueue interface {
	List() []notify.Notification
	Dismiss(id string) bool
}

// NotificationHandler exposes the toast queue.
type NotificationHandler struct {
	queue notificationQueue
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(queue notificationQueue) *NotificationHandler {
	return &NotificationHandler{queue: queue}
}

// List handles GET /admin/notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.queue.List())
}

// Dismiss handles DELETE /admin/notifications/{id}.
func (h *NotificationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	if !h.queue.Dismiss(r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "notification not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
