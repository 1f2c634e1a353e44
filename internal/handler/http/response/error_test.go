package response

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clearstaff/payroll-backend-go/internal/domain/auth"
	"github.com/clearstaff/payroll-backend-go/internal/domain/payrate"
	"github.com/clearstaff/payroll-backend-go/internal/domain/payroll"
	"github.com/clearstaff/payroll-backend-go/internal/domain/user"
	"github.com/clearstaff/payroll-backend-go/internal/domain/worker"
	"github.com/clearstaff/payroll-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"token revoked", auth.ErrTokenRevoked, http.StatusUnauthorized},
		{"user not found", user.ErrUserNotFound, http.StatusNotFound},
		{"admin privilege required", user.ErrAdminPrivilegeRequired, http.StatusForbidden},
		{"admin required", payroll.ErrAdminRequired, http.StatusForbidden},
		{"batch not found", payroll.ErrBatchNotFound, http.StatusNotFound},
		{"entry not found", payroll.ErrEntryNotFound, http.StatusNotFound},
		{"batch locked", payroll.ErrBatchLocked, http.StatusConflict},
		{"illegal transition", payroll.ErrIllegalTransition, http.StatusConflict},
		{"duplicate entry", payroll.ErrDuplicateEntry, http.StatusConflict},
		{"batch empty", payroll.ErrBatchEmpty, http.StatusBadRequest},
		{"invalid entry input", payroll.ErrInvalidEntryInput, http.StatusBadRequest},
		{"rate not found", payrate.ErrRateNotFound, http.StatusNotFound},
		{"pay rate not found", payrate.ErrPayRateNotFound, http.StatusNotFound},
		{"worker not found", worker.ErrWorkerNotFound, http.StatusNotFound},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleError(w, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandleError_WrappedErrorKeepsMapping(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, fmt.Errorf("submit batch: %w", payroll.ErrBatchLocked))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleError_ValidationErrors(t *testing.T) {
	w := httptest.NewRecorder()
	errs := validator.ValidationErrors{
		{Field: "period_start", Message: "must be a date in YYYY-MM-DD format"},
	}
	HandleError(w, errs)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "period_start")
}
