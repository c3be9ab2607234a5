// Package uihandler exposes transient UI state: toasts and the sidebar flag.
package uihandler

import (
	"net/http"

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
	r.Route("/ui", func(r chi.Router) {
		r.Get("/toasts", h.handleListToasts)
		r.Delete("/toasts/{toastID}", h.handleDismissToast)
		r.Post("/sidebar/toggle", h.handleToggleSidebar)
	})
}

func (h *Handler) handleListToasts(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Toasts(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDismissToast(w http.ResponseWriter, r *http.Request) {
	h.Store.RemoveToast(chi.URLParam(r, "toastID"))
	api.Success(w, map[string]string{"status": "dismissed"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleToggleSidebar(w http.ResponseWriter, r *http.Request) {
	open := h.Store.ToggleSidebar()
	api.Success(w, map[string]bool{"sidebarOpen": open}, middleware.GetRequestID(r.Context()))
}
