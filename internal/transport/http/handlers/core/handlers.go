// Package corehandler exposes the employee directory, documents and assets.
package corehandler

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
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Post("/", h.handleCreateEmployee)
		r.Get("/departments", h.handleListDepartments)
		r.Get("/{employeeID}", h.handleGetEmployee)
		r.Patch("/{employeeID}", h.handleUpdateEmployee)
		r.Delete("/{employeeID}", h.handleDeleteEmployee)
	})
	r.Route("/documents", func(r chi.Router) {
		r.Get("/", h.handleListDocuments)
		r.Post("/", h.handleCreateDocument)
		r.Patch("/{documentID}", h.handleUpdateDocument)
		r.Delete("/{documentID}", h.handleDeleteDocument)
	})
	r.Route("/assets", func(r chi.Router) {
		r.Get("/", h.handleListAssets)
		r.Post("/", h.handleCreateAsset)
		r.Patch("/{assetID}", h.handleUpdateAsset)
		r.Post("/{assetID}/assign", h.handleAssignAsset)
		r.Post("/{assetID}/return", h.handleReturnAsset)
		r.Delete("/{assetID}", h.handleDeleteAsset)
	})
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	query := r.URL.Query().Get("q")
	var out []store.Employee
	for _, emp := range h.Store.Employees() {
		if shared.MatchesQuery(query, emp.Name, emp.Email, emp.Department, emp.Designation) {
			out = append(out, emp)
		}
	}
	page := shared.ParsePagination(r, 50, 200)
	api.Success(w, map[string]any{
		"employees": shared.Page(out, page),
		"total":     len(out),
	}, reqID)
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload store.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("email", payload.Email, "email is required")
	v.Required("department", payload.Department, "department is required")
	v.Enum("status", payload.Status, store.EmployeeStatuses, "unknown employee status")
	if payload.JoinDate != "" {
		v.Date("joinDate", payload.JoinDate)
	}
	if v.Reject(w, reqID) {
		return
	}

	if payload.Status == "" {
		payload.Status = store.EmployeeActive
	}
	id := h.Store.AddEmployee(payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.EmployeeDepartments(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	emp, ok := h.Store.EmployeeByID(chi.URLParam(r, "employeeID"))
	if !ok {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
		return
	}
	api.Success(w, emp, reqID)
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var patch store.EmployeePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	if patch.Status != nil {
		v.Required("status", *patch.Status, "status must not be empty")
		v.Enum("status", *patch.Status, store.EmployeeStatuses, "unknown employee status")
	}
	if patch.JoinDate != nil {
		v.Date("joinDate", *patch.JoinDate)
	}
	if v.Reject(w, reqID) {
		return
	}

	if err := h.Store.UpdateEmployee(chi.URLParam(r, "employeeID"), patch); err != nil {
		writeStoreError(w, err, "employee", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, reqID)
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.DeleteEmployee(chi.URLParam(r, "employeeID")); err != nil {
		writeStoreError(w, err, "employee", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func (h *Handler) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Documents(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload store.Document
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("employeeId", payload.EmployeeID, "employeeId is required")
	v.Required("type", payload.Type, "type is required")
	v.Enum("type", payload.Type, store.DocumentTypes, "unknown document type")
	if payload.ExpiryDate != "" {
		v.Date("expiryDate", payload.ExpiryDate)
	}
	if v.Reject(w, reqID) {
		return
	}

	id := h.Store.AddDocument(payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var patch store.DocumentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	if patch.Type != nil {
		v.Required("type", *patch.Type, "type must not be empty")
		v.Enum("type", *patch.Type, store.DocumentTypes, "unknown document type")
	}
	if patch.ExpiryDate != nil && *patch.ExpiryDate != "" {
		v.Date("expiryDate", *patch.ExpiryDate)
	}
	if v.Reject(w, reqID) {
		return
	}

	if err := h.Store.UpdateDocument(chi.URLParam(r, "documentID"), patch); err != nil {
		writeStoreError(w, err, "document", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, reqID)
}

func (h *Handler) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.DeleteDocument(chi.URLParam(r, "documentID")); err != nil {
		writeStoreError(w, err, "document", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func (h *Handler) handleListAssets(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Assets(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateAsset(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload store.Asset
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("serialNumber", payload.SerialNumber, "serialNumber is required")
	v.Required("type", payload.Type, "type is required")
	v.Enum("type", payload.Type, store.AssetTypes, "unknown asset type")
	v.Enum("status", payload.Status, store.AssetStatuses, "unknown asset status")
	if v.Reject(w, reqID) {
		return
	}

	id := h.Store.AddAsset(payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleUpdateAsset(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var patch store.AssetPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	if patch.Type != nil {
		v.Required("type", *patch.Type, "type must not be empty")
		v.Enum("type", *patch.Type, store.AssetTypes, "unknown asset type")
	}
	if patch.Status != nil {
		v.Required("status", *patch.Status, "status must not be empty")
		v.Enum("status", *patch.Status, store.AssetStatuses, "unknown asset status")
	}
	if v.Reject(w, reqID) {
		return
	}

	if err := h.Store.UpdateAsset(chi.URLParam(r, "assetID"), patch); err != nil {
		writeStoreError(w, err, "asset", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, reqID)
}

type assignRequest struct {
	EmployeeID string `json:"employeeId"`
}

func (h *Handler) handleAssignAsset(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload assignRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employeeId is required")
	if v.Reject(w, reqID) {
		return
	}

	if err := h.Store.AssignAsset(chi.URLParam(r, "assetID"), payload.EmployeeID); err != nil {
		writeStoreError(w, err, "asset or employee", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "assigned"}, reqID)
}

func (h *Handler) handleReturnAsset(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.ReturnAsset(chi.URLParam(r, "assetID")); err != nil {
		writeStoreError(w, err, "asset", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "returned"}, reqID)
}

func (h *Handler) handleDeleteAsset(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.DeleteAsset(chi.URLParam(r, "assetID")); err != nil {
		writeStoreError(w, err, "asset", reqID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

func writeStoreError(w http.ResponseWriter, err error, what, reqID string) {
	if errors.Is(err, store.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", what+" not found", reqID)
		return
	}
	api.Fail(w, http.StatusInternalServerError, "store_error", "store operation failed", reqID)
}
