// Package expenseshandler exposes the expense claim workflow.
package expenseshandler

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
	r.Route("/expenses", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Patch("/{expenseID}", h.handleUpdate)
		r.Post("/{expenseID}/approve", h.handleApprove)
		r.Post("/{expenseID}/reject", h.handleReject)
		r.Post("/{expenseID}/status", h.handleSetStatus)
		r.Delete("/{expenseID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	status := r.URL.Query().Get("status")
	if status == "" {
		api.Success(w, h.Store.Expenses(), reqID)
		return
	}
	var out []store.Expense
	for _, exp := range h.Store.Expenses() {
		if exp.Status == status {
			out = append(out, exp)
		}
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload store.Expense
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employeeId is required")
	v.Required("title", payload.Title, "title is required")
	v.Required("category", payload.Category, "category is required")
	v.Enum("category", payload.Category, store.ExpenseCategories, "unknown expense category")
	v.Positive("amount", payload.Amount, "amount must be positive")
	if payload.Date != "" {
		v.Date("date", payload.Date)
	}
	if v.Reject(w, reqID) {
		return
	}

	id := h.Store.AddExpense(payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var patch store.ExpensePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	if patch.Category != nil {
		v.Required("category", *patch.Category, "category must not be empty")
		v.Enum("category", *patch.Category, store.ExpenseCategories, "unknown expense category")
	}
	if patch.Amount != nil {
		v.Positive("amount", *patch.Amount, "amount must be positive")
	}
	if patch.Date != nil && *patch.Date != "" {
		v.Date("date", *patch.Date)
	}
	if v.Reject(w, reqID) {
		return
	}

	if err := h.Store.UpdateExpense(chi.URLParam(r, "expenseID"), patch); err != nil {
		writeExpenseError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, reqID)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.ApproveExpense(chi.URLParam(r, "expenseID")); err != nil {
		writeExpenseError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": store.StatusApproved}, reqID)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.RejectExpense(chi.URLParam(r, "expenseID")); err != nil {
		writeExpenseError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": store.StatusRejected}, reqID)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload statusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	statuses := []string{store.StatusPending, store.StatusApproved, store.StatusRejected}
	v.Required("status", payload.Status, "status is required")
	v.Enum("status", payload.Status, statuses, "unknown expense status")
	if v.Reject(w, reqID) {
		return
	}

	if err := h.Store.UpdateExpenseStatus(chi.URLParam(r, "expenseID"), payload.Status); err != nil {
		writeExpenseError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": payload.Status}, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.DeleteExpense(chi.URLParam(r, "expenseID")); err != nil {
		writeExpenseError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func writeExpenseError(w http.ResponseWriter, err error, reqID string) {
	if errors.Is(err, store.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "expense not found", reqID)
		return
	}
	api.Fail(w, http.StatusInternalServerError, "store_error", "store operation failed", reqID)
}
