package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sony/gobreaker/v2"

	"github.com/abarrotes/pos/internal/auth"
	"github.com/abarrotes/pos/internal/catalog"
	"github.com/abarrotes/pos/internal/export"
	"github.com/abarrotes/pos/internal/report"
	"github.com/abarrotes/pos/internal/service"
	"github.com/abarrotes/pos/internal/store"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// respondServiceError maps domain sentinel errors to HTTP codes in one place.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid_credentials", "Usuario o contraseña incorrectos")
	case errors.Is(err, store.ErrSessionNotFound):
		respondError(w, http.StatusUnauthorized, "session_expired", "session not found or expired")
	case errors.Is(err, catalog.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "product_not_found", err.Error())
	case errors.Is(err, catalog.ErrCategoryNotFound):
		respondError(w, http.StatusNotFound, "category_not_found", err.Error())
	case errors.Is(err, service.ErrLineNotFound):
		respondError(w, http.StatusNotFound, "line_not_found", err.Error())
	case errors.Is(err, service.ErrEmptyCart):
		respondError(w, http.StatusConflict, "empty_cart", err.Error())
	case errors.Is(err, service.ErrCartLocked):
		respondError(w, http.StatusConflict, "cart_locked", err.Error())
	case errors.Is(err, service.ErrNotInPayment):
		respondError(w, http.StatusConflict, "no_payment", err.Error())
	case errors.Is(err, service.ErrPaymentInProgress):
		respondError(w, http.StatusConflict, "payment_in_progress", err.Error())
	case errors.Is(err, service.ErrNotConfirmable):
		respondError(w, http.StatusConflict, "not_confirmable", err.Error())
	case errors.Is(err, service.ErrNotInReport):
		respondError(w, http.StatusConflict, "report_not_open", err.Error())
	case errors.Is(err, service.ErrCashOnly):
		respondError(w, http.StatusBadRequest, "cash_only", err.Error())
	case errors.Is(err, service.ErrInvalidMethod):
		respondError(w, http.StatusBadRequest, "invalid_method", err.Error())
	case errors.Is(err, service.ErrInvalidAmount):
		respondError(w, http.StatusBadRequest, "invalid_amount", err.Error())
	case errors.Is(err, service.ErrForbidden):
		respondError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, report.ErrUnknownPeriod):
		respondError(w, http.StatusBadRequest, "unknown_period", err.Error())
	case errors.Is(err, export.ErrUnknownFormat):
		respondError(w, http.StatusBadRequest, "unknown_format", err.Error())
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		respondError(w, http.StatusServiceUnavailable, "payment_unavailable", "payment gateway temporarily unavailable")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		respondError(w, http.StatusGatewayTimeout, "timeout", "request timed out")
	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
