package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mytasks/mytasks-server/internal/logger"
	"github.com/mytasks/mytasks-server/internal/model"
)

// AuthService defines registration and login operations.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (model.User, error)
	Login(ctx context.Context, email, password string) (string, model.User, error)
}

// Auth handles the registration and login endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type cadastroRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Cadastro handles POST /cadastro.
func (h *Auth) Cadastro(w http.ResponseWriter, r *http.Request) {
	var req cadastroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name, email, password and confirmPassword are required"})
		return
	}
	if req.Password != req.ConfirmPassword {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "passwords do not match"})
		return
	}

	user, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"id":      user.ID.String(),
		"message": "user created",
	})
}

// Login handles POST /login.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email and password are required"})
		return
	}

	tokenString, _, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": tokenString})
}
