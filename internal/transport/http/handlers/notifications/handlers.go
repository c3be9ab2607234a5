// Package notificationshandler exposes the notification inbox.
package notificationshandler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/store"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

type Handler struct {
	Store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{Store: st}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/{notificationID}/read", h.handleMarkRead)
		r.Post("/read-all", h.handleMarkAllRead)
	})
}

type notificationView struct {
	store.Notification
	Time string `json:"time"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	now := time.Now()
	items := h.Store.Notifications()
	views := make([]notificationView, 0, len(items))
	for _, n := range items {
		views = append(views, notificationView{Notification: n, Time: store.RelativeTime(n.CreatedAt, now)})
	}
	api.Success(w, map[string]any{
		"notifications": views,
		"unread":        h.Store.UnreadNotifications(),
	}, reqID)
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.MarkNotificationRead(chi.URLParam(r, "notificationID")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "notification not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "store_error", "store operation failed", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "read"}, reqID)
}

func (h *Handler) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	h.Store.MarkAllNotificationsRead()
	api.Success(w, map[string]string{"status": "read"}, middleware.GetRequestID(r.Context()))
}
