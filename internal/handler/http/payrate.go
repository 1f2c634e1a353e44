package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/clearstaff/payroll-backend-go/internal/domain/payrate"
	"github.com/clearstaff/payroll-backend-go/internal/handler/http/response"
	"github.com/clearstaff/payroll-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type PayRateHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByWorker(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type PayRateHandlerImpl struct {
	payRateService payrate.PayRateService
}

func NewPayRateHandler(payRateService payrate.PayRateService) PayRateHandler {
	return &PayRateHandlerImpl{payRateService: payRateService}
}

// Create implements PayRateHandler.
func (h *PayRateHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payrate.CreatePayRateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create pay rate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payRateService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create pay rate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pay rate created", result)
}

// ListByWorker implements PayRateHandler.
func (h *PayRateHandlerImpl) ListByWorker(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")

	result, err := h.payRateService.ListByWorker(r.Context(), workerID)
	if err != nil {
		slog.Error("ListByWorker pay rates service error", "error", err, "worker_id", workerID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Resolve implements PayRateHandler. The as_of query parameter defaults to
// today.
func (h *PayRateHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")

	asOf := time.Now().Truncate(24 * time.Hour)
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "as_of must be a date in YYYY-MM-DD format", nil)
			return
		}
		asOf = parsed
	}

	result, err := h.payRateService.ResolveRate(r.Context(), workerID, asOf)
	if err != nil {
		slog.Error("Resolve pay rate service error", "error", err, "worker_id", workerID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Deactivate implements PayRateHandler.
func (h *PayRateHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payRateService.Deactivate(r.Context(), id); err != nil {
		slog.Error("Deactivate pay rate service error", "error", err, "pay_rate_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay rate deactivated", nil)
}
