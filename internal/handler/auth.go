package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tinyrecords/tinyrecords-go/internal/model"
	"github.com/tinyrecords/tinyrecords-go/internal/service"
)

// CookieConfig describes how the session cookie is issued.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service *service.AuthService
	cookie  CookieConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{service: svc, cookie: cookie}
}

// HandleLogin handles POST /api/login requests. On success the session token
// is delivered in an HTTP-only cookie, never in the response body.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	// A malformed or empty body decodes to empty credentials, which fail
	// verification like any other wrong pair.
	var req model.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, errorResponse("invalid_credentials"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cookie.Secure,
	})

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
