// Package learninghandler exposes the course catalog and enrollment endpoints.
package learninghandler

import (
	"encoding/json"
	"errors"
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
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/{courseID}", h.handleGet)
		r.Post("/{courseID}/enroll", h.handleEnroll)
		r.Post("/{courseID}/progress", h.handleProgress)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	category := r.URL.Query().Get("category")
	if category == "" {
		api.Success(w, h.Store.Courses(), reqID)
		return
	}
	var out []store.Course
	for _, c := range h.Store.Courses() {
		if c.Category == category {
			out = append(out, c)
		}
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	course, ok := h.Store.CourseByID(chi.URLParam(r, "courseID"))
	if !ok {
		api.Fail(w, http.StatusNotFound, "not_found", "course not found", reqID)
		return
	}
	api.Success(w, course, reqID)
}

func (h *Handler) handleEnroll(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.EnrollCourse(chi.URLParam(r, "courseID")); err != nil {
		writeCourseError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "enrolled"}, reqID)
}

type progressRequest struct {
	Progress int `json:"progress"`
}

func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload progressRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	id := chi.URLParam(r, "courseID")
	if err := h.Store.UpdateCourseProgress(id, payload.Progress); err != nil {
		writeCourseError(w, err, reqID)
		return
	}
	course, _ := h.Store.CourseByID(id)
	api.Success(w, course, reqID)
}

func writeCourseError(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "course not found", reqID)
	case errors.Is(err, store.ErrNotEnrolled):
		api.Fail(w, http.StatusConflict, "not_enrolled", "course progress requires enrollment", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "store_error", "store operation failed", reqID)
	}
}
