package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/macromon/internal/adapters/storage"
	"github.com/okian/macromon/internal/auth"
)

// AuthHandler exchanges credentials for access tokens.
type AuthHandler struct {
	deps Dependencies
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(deps Dependencies) *AuthHandler {
	return &AuthHandler{deps: deps}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// HandleLogin handles POST /api/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", ErrBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing_credentials", ErrBadRequest)
		return
	}

	token, err := h.deps.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, storage.ErrBadCredentials) {
			writeError(w, http.StatusUnauthorized, "bad_credentials", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "login_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

// RequireAuth wraps a handler so it only runs for requests carrying a valid
// bearer token. The resolved principal is stored on the request context.
func RequireAuth(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := auth.ParseFromRequest(r, secret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized", err)
			return
		}
		next(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	}
}

// RequireAdmin is RequireAuth plus an admin role check.
func RequireAdmin(secret string, next http.HandlerFunc) http.HandlerFunc {
	return RequireAuth(secret, func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.FromContext(r.Context())
		if !ok || !principal.IsAdmin() {
			writeError(w, http.StatusForbidden, "forbidden", ErrAdminOnly)
			return
		}
		next(w, r)
	})
}
