package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/clearstaff/payroll-backend-go/internal/domain/payroll"
	"github.com/clearstaff/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	CreateBatch(w http.ResponseWriter, r *http.Request)
	GetBatch(w http.ResponseWriter, r *http.Request)
	ListBatches(w http.ResponseWriter, r *http.Request)
	DeleteBatch(w http.ResponseWriter, r *http.Request)

	AddEntry(w http.ResponseWriter, r *http.Request)
	UpdateEntry(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)

	AutoCalculate(w http.ResponseWriter, r *http.Request)

	SubmitBatch(w http.ResponseWriter, r *http.Request)
	ApproveBatch(w http.ResponseWriter, r *http.Request)
	ProcessBatch(w http.ResponseWriter, r *http.Request)
	CancelBatch(w http.ResponseWriter, r *http.Request)
	ReopenBatch(w http.ResponseWriter, r *http.Request)

	ListBatchStubs(w http.ResponseWriter, r *http.Request)
	ListWorkerStubs(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// CreateBatch implements PayrollHandler.
func (h *PayrollHandlerImpl) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateBatchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateBatch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.CreateBatch(r.Context(), req)
	if err != nil {
		slog.Error("CreateBatch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll batch created", result)
}

// GetBatch implements PayrollHandler.
func (h *PayrollHandlerImpl) GetBatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.GetBatch(r.Context(), id)
	if err != nil {
		slog.Error("GetBatch service error", "error", err, "batch_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListBatches implements PayrollHandler.
func (h *PayrollHandlerImpl) ListBatches(w http.ResponseWriter, r *http.Request) {
	filter := payroll.BatchFilter{Page: 1, Limit: 20}

	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		filter.Page = p
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 && l <= 100 {
		filter.Limit = l
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := payroll.BatchStatus(status)
		filter.Status = &s
	}

	result, err := h.payrollService.ListBatches(r.Context(), filter)
	if err != nil {
		slog.Error("ListBatches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	totalPages := int((result.TotalItems + int64(filter.Limit) - 1) / int64(filter.Limit))
	response.SuccessWithMeta(w, result.Batches, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: result.TotalItems,
		TotalPages: totalPages,
	})
}

// DeleteBatch implements PayrollHandler.
func (h *PayrollHandlerImpl) DeleteBatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.DeleteBatch(r.Context(), id); err != nil {
		slog.Error("DeleteBatch service error", "error", err, "batch_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll batch deleted", nil)
}

// AddEntry implements PayrollHandler.
func (h *PayrollHandlerImpl) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req payroll.AddEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.BatchID = chi.URLParam(r, "id")

	result, err := h.payrollService.AddEntry(r.Context(), req)
	if err != nil {
		slog.Error("AddEntry service error", "error", err, "batch_id", req.BatchID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll entry created", result)
}

// UpdateEntry implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.payrollService.UpdateEntry(r.Context(), req)
	if err != nil {
		slog.Error("UpdateEntry service error", "error", err, "entry_id", req.ID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteEntry implements PayrollHandler.
func (h *PayrollHandlerImpl) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.DeleteEntry(r.Context(), id); err != nil {
		slog.Error("DeleteEntry service error", "error", err, "entry_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll entry deleted", nil)
}

// AutoCalculate implements PayrollHandler.
func (h *PayrollHandlerImpl) AutoCalculate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.AutoCalculate(r.Context(), id)
	if err != nil {
		slog.Error("AutoCalculate service error", "error", err, "batch_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SubmitBatch implements PayrollHandler.
func (h *PayrollHandlerImpl) SubmitBatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.SubmitBatch(r.Context(), id)
	if err != nil {
		slog.Error("SubmitBatch service error", "error", err, "batch_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Batch submitted for processing", result)
}

// ApproveBatch implements PayrollHandler.
func (h *PayrollHandlerImpl) ApproveBatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.ApproveBatch(r.Context(), id)
	if err != nil {
		slog.Error("ApproveBatch service error", "error", err, "batch_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Batch approved", result)
}

// ProcessBatch implements PayrollHandler.
func (h *PayrollHandlerImpl) ProcessBatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// Body is optional; an empty body means server-side pay date
	var req payroll.ProcessBatchRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("ProcessBatch decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.payrollService.ProcessBatch(r.Context(), id, req)
	if err != nil {
		slog.Error("ProcessBatch service error", "error", err, "batch_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Batch processed and marked paid", result)
}

// CancelBatch implements PayrollHandler.
func (h *PayrollHandlerImpl) CancelBatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req payroll.CancelBatchRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("CancelBatch decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.payrollService.CancelBatch(r.Context(), id, req)
	if err != nil {
		slog.Error("CancelBatch service error", "error", err, "batch_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Batch cancelled", result)
}

// ReopenBatch implements PayrollHandler.
func (h *PayrollHandlerImpl) ReopenBatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.ReopenBatch(r.Context(), id)
	if err != nil {
		slog.Error("ReopenBatch service error", "error", err, "batch_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Batch reopened", result)
}

// ListBatchStubs implements PayrollHandler.
func (h *PayrollHandlerImpl) ListBatchStubs(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.ListBatchStubs(r.Context(), id)
	if err != nil {
		slog.Error("ListBatchStubs service error", "error", err, "batch_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListWorkerStubs implements PayrollHandler.
func (h *PayrollHandlerImpl) ListWorkerStubs(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.ListWorkerStubs(r.Context(), id)
	if err != nil {
		slog.Error("ListWorkerStubs service error", "error", err, "worker_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
