package handler

import (
	"errors"
	"net/http"

	"github.com/singhdavide01/todo-api/internal/middleware"
	"github.com/singhdavide01/todo-api/internal/service"
)

// UserHandler serves GET /users/me: the profile of the authenticated user,
// without the password hash.
type UserHandler struct {
	svc *service.AuthService
}

func NewUserHandler(svc *service.AuthService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "only GET is allowed")
		return
	}

	username := middleware.GetUsername(r)
	if username == "" {
		WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "could not validate credentials")
		return
	}

	profile, err := h.svc.CurrentUser(r.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "could not validate credentials")
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}

	WriteJSON(w, http.StatusOK, profile)
}
