package http

import (
	"encoding/json"
	"net/http"

	"github.com/abarrotes/pos/internal/domain"
	"github.com/abarrotes/pos/internal/payment"
	"github.com/abarrotes/pos/internal/service"
)

type PaymentHandler struct {
	orders *service.OrderService
}

func NewPaymentHandler(orders *service.OrderService) *PaymentHandler {
	return &PaymentHandler{orders: orders}
}

type SelectMethodRequestDTO struct {
	Method domain.PaymentMethod `json:"method"`
}

type EnterCashRequestDTO struct {
	Amount float64 `json:"amount"`
}

// Checkout freezes the cart behind a payment attempt and moves the session to
// the payment screen.
func (h *PaymentHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}

	sess, err := h.orders.Checkout(sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newSessionView(sess))
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}
	sess, err := h.orders.Session(sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newSessionView(sess))
}

func (h *PaymentHandler) SelectMethod(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}

	var req SelectMethodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	sess, err := h.orders.SelectMethod(sessionID, req.Method)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	view := newSessionView(sess)
	if req.Method == domain.MethodDigitalQR && sess.Attempt != nil {
		png, err := payment.QRPayload(payment.ChargeRequest{
			SessionID: sessionID,
			Method:    sess.Attempt.Method,
			Amount:    sess.Attempt.OrderTotal,
			Currency:  sess.Attempt.Snapshot.Currency,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		view.Payment.QRCode = png
	}
	respondJSON(w, http.StatusOK, view)
}

func (h *PaymentHandler) EnterCash(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}

	var req EnterCashRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	sess, err := h.orders.EnterCash(sessionID, req.Amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newSessionView(sess))
}

// Confirm runs the simulated charge. The request blocks for the gateway
// latency; the session shows PROCESSING to anyone polling meanwhile.
func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}

	sess, err := h.orders.Confirm(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newSessionView(sess))
}

func (h *PaymentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}

	sess, err := h.orders.CancelPayment(sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newSessionView(sess))
}
