// Package performancehandler exposes goal tracking endpoints.
package performancehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/store"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{Store: st}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/goals", func(r chi.Router) {
		r.Get("/", h.handleListGoals)
		r.Post("/", h.handleCreateGoal)
		r.Get("/{goalID}", h.handleGetGoal)
		r.Patch("/{goalID}", h.handleUpdateGoal)
		r.Post("/{goalID}/progress", h.handleUpdateProgress)
		r.Delete("/{goalID}", h.handleDeleteGoal)
	})
}

func (h *Handler) handleListGoals(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Goals(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload store.Goal
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("title", payload.Title, "title is required")
	v.Required("category", payload.Category, "category is required")
	v.Enum("category", payload.Category, store.GoalCategories, "unknown goal category")
	if payload.DueDate != "" {
		v.Date("dueDate", payload.DueDate)
	}
	if v.Reject(w, reqID) {
		return
	}

	id := h.Store.AddGoal(payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	goal, ok := h.Store.GoalByID(chi.URLParam(r, "goalID"))
	if !ok {
		api.Fail(w, http.StatusNotFound, "not_found", "goal not found", reqID)
		return
	}
	api.Success(w, goal, reqID)
}

func (h *Handler) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var patch store.GoalPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	if patch.Category != nil {
		v.Required("category", *patch.Category, "category must not be empty")
		v.Enum("category", *patch.Category, store.GoalCategories, "unknown goal category")
	}
	if patch.DueDate != nil && *patch.DueDate != "" {
		v.Date("dueDate", *patch.DueDate)
	}
	if v.Reject(w, reqID) {
		return
	}

	if err := h.Store.UpdateGoal(chi.URLParam(r, "goalID"), patch); err != nil {
		writeGoalError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, reqID)
}

type progressRequest struct {
	Progress int `json:"progress"`
}

func (h *Handler) handleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload progressRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	id := chi.URLParam(r, "goalID")
	if err := h.Store.UpdateGoalProgress(id, payload.Progress); err != nil {
		writeGoalError(w, err, reqID)
		return
	}
	goal, _ := h.Store.GoalByID(id)
	api.Success(w, goal, reqID)
}

func (h *Handler) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.DeleteGoal(chi.URLParam(r, "goalID")); err != nil {
		writeGoalError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func writeGoalError(w http.ResponseWriter, err error, reqID string) {
	if errors.Is(err, store.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "goal not found", reqID)
		return
	}
	api.Fail(w, http.StatusInternalServerError, "store_error", "store operation failed", reqID)
}
