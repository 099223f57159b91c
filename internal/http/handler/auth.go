package handler

import (
	"errors"
	"net/http"

	"github.com/singhdavide01/todo-api/internal/service"
)

// AuthHandler serves POST /token: the OAuth2 password-flow style credential
// exchange. The request body is a URL-encoded form with username and
// password fields.
type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "only POST is allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := r.ParseForm(); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_FORM", "invalid form body")
		return
	}

	out, err := h.svc.Login(r.Context(), service.LoginInput{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		handleAuthError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, out)
}

// handleAuthError keeps the credential-failure message uniform so clients
// cannot distinguish an unknown username from a wrong password.
func handleAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "incorrect username or password")
	case errors.Is(err, service.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
