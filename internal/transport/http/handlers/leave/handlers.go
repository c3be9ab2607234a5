// Package leavehandler exposes the leave request workflow.
package leavehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

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
	r.Route("/leave-requests", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Post("/{requestID}/approve", h.handleApprove)
		r.Post("/{requestID}/reject", h.handleReject)
		r.Delete("/{requestID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	status := r.URL.Query().Get("status")
	if status == "" {
		api.Success(w, h.Store.LeaveRequests(), reqID)
		return
	}
	var out []store.LeaveRequest
	for _, lr := range h.Store.LeaveRequests() {
		if lr.Status == status {
			out = append(out, lr)
		}
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload store.LeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employeeId is required")
	v.Required("type", payload.Type, "type is required")
	v.Enum("type", payload.Type, store.LeaveTypes, "unknown leave type")
	v.Required("startDate", payload.StartDate, "startDate is required")
	v.Required("endDate", payload.EndDate, "endDate is required")
	var start, end time.Time
	startOK, endOK := false, false
	if payload.StartDate != "" {
		start, startOK = v.Date("startDate", payload.StartDate)
	}
	if payload.EndDate != "" {
		end, endOK = v.Date("endDate", payload.EndDate)
	}
	if startOK && endOK {
		v.DateOrder("startDate", start, "endDate", end)
	}
	if v.Reject(w, reqID) {
		return
	}

	if payload.Days == 0 {
		payload.Days = shared.LeaveDays(start, end)
	}
	id := h.Store.AddLeaveRequest(payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.ApproveLeave(chi.URLParam(r, "requestID")); err != nil {
		writeLeaveError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": store.StatusApproved}, reqID)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.RejectLeave(chi.URLParam(r, "requestID")); err != nil {
		writeLeaveError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": store.StatusRejected}, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.DeleteLeaveRequest(chi.URLParam(r, "requestID")); err != nil {
		writeLeaveError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func writeLeaveError(w http.ResponseWriter, err error, reqID string) {
	if errors.Is(err, store.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", reqID)
		return
	}
	api.Fail(w, http.StatusInternalServerError, "store_error", "store operation failed", reqID)
}
