package http

import (
	"log/slog"
	"net/http"

	"github.com/clearstaff/payroll-backend-go/internal/domain/worker"
	"github.com/clearstaff/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkerHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type WorkerHandlerImpl struct {
	workerService worker.WorkerService
}

func NewWorkerHandler(workerService worker.WorkerService) WorkerHandler {
	return &WorkerHandlerImpl{workerService: workerService}
}

// Get implements WorkerHandler.
func (h *WorkerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.workerService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Get worker service error", "error", err, "worker_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements WorkerHandler.
func (h *WorkerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	result, err := h.workerService.List(r.Context(), activeOnly)
	if err != nil {
		slog.Error("List workers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
