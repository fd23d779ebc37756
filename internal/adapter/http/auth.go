package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// handleRegister creates a new account. A duplicate email results in
// HTTP 409; on success it returns the account and a session token.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}
	result, err := h.auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		h.logger.Error("register error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeAuthResult(w, result, http.StatusCreated)
}

// handleLogin verifies credentials and returns a session token. Unknown
// email and wrong password both result in HTTP 401.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		h.logger.Error("login error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeAuthResult(w, result, http.StatusOK)
}

func (h *Handler) writeAuthResult(w http.ResponseWriter, result *port.AuthResult, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := authResponse{
		User:  userResponse{ID: result.User.ID, Email: result.User.Email},
		Token: result.Token,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
