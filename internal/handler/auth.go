package handler

import (
	"net/http"

	"github.com/productapi/productapi-go/internal/model"
	"github.com/productapi/productapi-go/internal/service"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.service.Register(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.MessageResponse{Message: "User Registered Successfully"})
}

// HandleLogin handles POST /login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{Message: "Login Successful", Token: token})
}
