package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/singhdavide01/todo-api/internal/token"
)

// ErrUserNotFound is returned by UserResolver when no user matches the
// token subject.
var ErrUserNotFound = errors.New("user not found")

// ErrUserDisabled is returned by UserResolver when the user exists but is
// disabled.
var ErrUserDisabled = errors.New("user disabled")

// UserResolver resolves a verified token subject to an active user.
// Implementations must return ErrUserNotFound or ErrUserDisabled (or
// wrapped forms) when the subject cannot act.
type UserResolver interface {
	ResolveUsername(ctx context.Context, subject string) (string, error)
}

// TokenVerifier checks a bearer token and returns its subject.
type TokenVerifier interface {
	Verify(tokenStr string) (string, error)
}

type AuthConfig struct {
	DevMode      bool
	Tokens       TokenVerifier
	UserResolver UserResolver
}

type Auth struct {
	cfg AuthConfig
}

func NewAuth(cfg AuthConfig) (*Auth, error) {
	if !cfg.DevMode {
		if cfg.Tokens == nil {
			return nil, fmt.Errorf("middleware: Tokens is required when DevMode is false")
		}
		if cfg.UserResolver == nil {
			return nil, fmt.Errorf("middleware: UserResolver is required when DevMode is false")
		}
	}
	return &Auth{cfg: cfg}, nil
}

func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Token issuance and health check are exempt from token checks
		cleanPath := path.Clean(r.URL.Path)
		if cleanPath == "/health" || cleanPath == "/token" {
			next.ServeHTTP(w, r)
			return
		}

		if a.cfg.DevMode {
			a.handleDevMode(w, r, next)
			return
		}

		a.handleBearer(w, r, next)
	})
}

func (a *Auth) handleDevMode(w http.ResponseWriter, r *http.Request, next http.Handler) {
	username := r.Header.Get("X-Username")
	if username == "" {
		writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "X-Username header required in dev mode")
		return
	}

	ctx := SetUsername(r.Context(), username)
	next.ServeHTTP(w, r.WithContext(ctx))
}

func (a *Auth) handleBearer(w http.ResponseWriter, r *http.Request, next http.Handler) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "could not validate credentials")
		return
	}

	scheme, tokenStr, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "could not validate credentials")
		return
	}

	subject, err := a.cfg.Tokens.Verify(tokenStr)
	if err != nil {
		// Uniform message: do not reveal whether the signature, expiry
		// or payload failed.
		writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "could not validate credentials")
		return
	}

	username, err := a.cfg.UserResolver.ResolveUsername(r.Context(), subject)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrUserDisabled) {
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "could not validate credentials")
		} else {
			slog.ErrorContext(r.Context(), "user resolution failed", "error", err)
			writeAuthError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return
	}

	ctx := SetUsername(r.Context(), username)
	next.ServeHTTP(w, r.WithContext(ctx))
}

func writeAuthError(w http.ResponseWriter, status int, code, message string) {
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

var _ TokenVerifier = (*token.Service)(nil)
