// Package reportshandler exposes dashboard aggregates and data exports.
package reportshandler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/export"
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
	r.Route("/reports", func(r chi.Router) {
		r.Get("/headcount", h.handleHeadcount)
		r.Get("/pipeline", h.handlePipeline)
		r.Get("/expenses", h.handleExpenses)
		r.Get("/assets", h.handleAssets)
		r.Get("/summary.pdf", h.handleSummaryPDF)
		r.Get("/export/{collection}", h.handleExportCSV)
	})
}

func (h *Handler) handleHeadcount(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	api.Success(w, map[string]any{
		"total":        len(h.Store.Employees()),
		"active":       len(h.Store.ActiveEmployees()),
		"byDepartment": h.Store.HeadcountByDepartment(),
	}, reqID)
}

func (h *Handler) handlePipeline(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.CandidatesByStage(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExpenses(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	api.Success(w, map[string]any{
		"stats":   h.Store.ExpenseStats(),
		"pending": h.Store.PendingExpenseCount(),
	}, reqID)
}

func (h *Handler) handleAssets(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	api.Success(w, map[string]any{
		"byStatus": h.Store.AssetsByStatus(),
		"value":    h.Store.AssetValueStats(),
	}, reqID)
}

func (h *Handler) handleSummaryPDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	doc, err := export.SummaryPDF(export.Summary{
		GeneratedAt:     time.Now(),
		TotalEmployees:  len(h.Store.Employees()),
		Headcount:       h.Store.HeadcountByDepartment(),
		Pipeline:        h.Store.CandidatesByStage(),
		AssetValues:     h.Store.AssetValueStats(),
		PendingLeave:    h.Store.PendingLeaveCount(),
		PendingExpenses: h.Store.PendingExpenseCount(),
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "could not render summary", reqID)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="dashboard-summary.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	collection := chi.URLParam(r, "collection")

	var records any
	switch collection {
	case "employees":
		records = h.Store.Employees()
	case "documents":
		records = h.Store.Documents()
	case "assets":
		records = h.Store.Assets()
	case "goals":
		records = h.Store.Goals()
	case "candidates":
		records = h.Store.Candidates()
	case "interviews":
		records = h.Store.Interviews()
	case "leave-requests":
		records = h.Store.LeaveRequests()
	case "expenses":
		records = h.Store.Expenses()
	case "courses":
		records = h.Store.Courses()
	default:
		api.Fail(w, http.StatusNotFound, "not_found", "unknown export collection", reqID)
		return
	}

	data, err := export.CSV(records)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "could not render csv", reqID)
		return
	}
	if data == nil {
		api.Fail(w, http.StatusNotFound, "empty_collection", "nothing to export", reqID)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(collection, time.Now())))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
