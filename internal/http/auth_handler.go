package http

import (
	"encoding/json"
	"net/http"

	"github.com/abarrotes/pos/internal/service"
)

type AuthHandler struct {
	orders *service.OrderService
}

func NewAuthHandler(orders *service.OrderService) *AuthHandler {
	return &AuthHandler{orders: orders}
}

type LoginRequestDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponseDTO struct {
	Token   string      `json:"token"`
	Session SessionView `json:"session"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "missing_credentials", "username and password are required")
		return
	}

	token, sess, err := h.orders.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, LoginResponseDTO{
		Token:   token,
		Session: newSessionView(sess),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}
	if err := h.orders.Logout(sessionID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// GetSession lets a client restore its screen after a reload.
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
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
