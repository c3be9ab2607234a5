// Package recruitinghandler exposes the candidate pipeline and interview
// scheduling endpoints.
package recruitinghandler

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
	r.Route("/candidates", func(r chi.Router) {
		r.Get("/", h.handleListCandidates)
		r.Post("/", h.handleCreateCandidate)
		r.Get("/{candidateID}", h.handleGetCandidate)
		r.Patch("/{candidateID}", h.handleUpdateCandidate)
		r.Post("/{candidateID}/advance", h.handleAdvanceCandidate)
		r.Post("/{candidateID}/reject", h.handleRejectCandidate)
		r.Post("/{candidateID}/hire", h.handleHireCandidate)
		r.Delete("/{candidateID}", h.handleDeleteCandidate)
	})
	r.Route("/interviews", func(r chi.Router) {
		r.Get("/", h.handleListInterviews)
		r.Post("/", h.handleCreateInterview)
		r.Patch("/{interviewID}", h.handleUpdateInterview)
		r.Post("/{interviewID}/cancel", h.handleCancelInterview)
		r.Delete("/{interviewID}", h.handleDeleteInterview)
	})
}

func (h *Handler) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	stage := r.URL.Query().Get("stage")
	if stage == "" {
		api.Success(w, h.Store.Candidates(), reqID)
		return
	}
	var out []store.Candidate
	for _, can := range h.Store.Candidates() {
		if can.Stage == stage {
			out = append(out, can)
		}
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload store.Candidate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("position", payload.Position, "position is required")
	if payload.Source != "" {
		v.Enum("source", payload.Source, store.CandidateSources, "unknown candidate source")
	}
	if payload.AppliedDate != "" {
		v.Date("appliedDate", payload.AppliedDate)
	}
	if v.Reject(w, reqID) {
		return
	}

	id := h.Store.AddCandidate(payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	can, ok := h.Store.CandidateByID(chi.URLParam(r, "candidateID"))
	if !ok {
		api.Fail(w, http.StatusNotFound, "not_found", "candidate not found", reqID)
		return
	}
	api.Success(w, can, reqID)
}

func (h *Handler) handleUpdateCandidate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var patch store.CandidatePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	if patch.Stage != nil {
		stages := append([]string{}, store.CandidateStages...)
		stages = append(stages, store.StageRejected)
		v.Required("stage", *patch.Stage, "stage must not be empty")
		v.Enum("stage", *patch.Stage, stages, "unknown pipeline stage")
	}
	if patch.Source != nil && *patch.Source != "" {
		v.Enum("source", *patch.Source, store.CandidateSources, "unknown candidate source")
	}
	if v.Reject(w, reqID) {
		return
	}

	if err := h.Store.UpdateCandidate(chi.URLParam(r, "candidateID"), patch); err != nil {
		writeCandidateError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, reqID)
}

func (h *Handler) handleAdvanceCandidate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	stage, err := h.Store.AdvanceCandidate(chi.URLParam(r, "candidateID"))
	if err != nil {
		writeCandidateError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"stage": stage}, reqID)
}

func (h *Handler) handleRejectCandidate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.RejectCandidate(chi.URLParam(r, "candidateID")); err != nil {
		writeCandidateError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"stage": store.StageRejected}, reqID)
}

func (h *Handler) handleHireCandidate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employeeID, err := h.Store.HireCandidate(chi.URLParam(r, "candidateID"))
	if err != nil {
		if errors.Is(err, store.ErrAlreadyHired) {
			api.Fail(w, http.StatusConflict, "already_hired", "candidate has already been hired", reqID)
			return
		}
		writeCandidateError(w, err, reqID)
		return
	}
	api.Created(w, map[string]string{"employeeId": employeeID}, reqID)
}

func (h *Handler) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.DeleteCandidate(chi.URLParam(r, "candidateID")); err != nil {
		writeCandidateError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func (h *Handler) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Interviews(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateInterview(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload store.Interview
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("candidateId", payload.CandidateID, "candidateId is required")
	v.Required("date", payload.Date, "date is required")
	if payload.Date != "" {
		v.Date("date", payload.Date)
	}
	v.Required("type", payload.Type, "type is required")
	v.Enum("type", payload.Type, store.InterviewTypes, "unknown interview type")
	if v.Reject(w, reqID) {
		return
	}

	id := h.Store.AddInterview(payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleUpdateInterview(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var patch store.InterviewPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	if patch.Type != nil {
		v.Required("type", *patch.Type, "type must not be empty")
		v.Enum("type", *patch.Type, store.InterviewTypes, "unknown interview type")
	}
	if patch.Date != nil && *patch.Date != "" {
		v.Date("date", *patch.Date)
	}
	if v.Reject(w, reqID) {
		return
	}

	if err := h.Store.UpdateInterview(chi.URLParam(r, "interviewID"), patch); err != nil {
		writeInterviewError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, reqID)
}

func (h *Handler) handleCancelInterview(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.CancelInterview(chi.URLParam(r, "interviewID")); err != nil {
		writeInterviewError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": store.InterviewCancelled}, reqID)
}

func (h *Handler) handleDeleteInterview(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.DeleteInterview(chi.URLParam(r, "interviewID")); err != nil {
		writeInterviewError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func writeCandidateError(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "candidate not found", reqID)
	case errors.Is(err, store.ErrTerminalStage):
		api.Fail(w, http.StatusConflict, "terminal_stage", "candidate is in a terminal stage", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "store_error", "store operation failed", reqID)
	}
}

func writeInterviewError(w http.ResponseWriter, err error, reqID string) {
	if errors.Is(err, store.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "interview not found", reqID)
		return
	}
	api.Fail(w, http.StatusInternalServerError, "store_error", "store operation failed", reqID)
}
