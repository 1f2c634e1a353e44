package response

import (
	"errors"
	"net/http"

	"github.com/clearstaff/payroll-backend-go/internal/domain/auth"
	"github.com/clearstaff/payroll-backend-go/internal/domain/payrate"
	"github.com/clearstaff/payroll-backend-go/internal/domain/payroll"
	"github.com/clearstaff/payroll-backend-go/internal/domain/user"
	"github.com/clearstaff/payroll-backend-go/internal/domain/worker"
	"github.com/clearstaff/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, payroll.ErrAdminRequired):
		Forbidden(w, "Administrator privileges required")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrBatchNotFound):
		NotFound(w, "Payroll batch not found")
	case errors.Is(err, payroll.ErrEntryNotFound):
		NotFound(w, "Payroll entry not found")
	case errors.Is(err, payroll.ErrBatchLocked):
		Conflict(w, "Batch is not in draft and cannot be modified")
	case errors.Is(err, payroll.ErrIllegalTransition):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrDuplicateEntry):
		Conflict(w, "Worker already has an entry in this batch")
	case errors.Is(err, payroll.ErrBatchEmpty):
		BadRequest(w, "Batch has no entries", nil)
	case errors.Is(err, payroll.ErrInvalidEntryInput):
		BadRequest(w, err.Error(), nil)

	// Pay rate domain errors
	case errors.Is(err, payrate.ErrRateNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, payrate.ErrPayRateNotFound):
		NotFound(w, "Pay rate not found")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
