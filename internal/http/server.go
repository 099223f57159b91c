package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/singhdavide01/todo-api/internal/middleware"
	"github.com/singhdavide01/todo-api/internal/service"
)

type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

func NewServer(port string, logger *slog.Logger, todoSvc *service.TodoService, authSvc *service.AuthService, auth *middleware.Auth, corsOrigin string) *Server {
	router := NewRouter(todoSvc, authSvc)

	// Middleware chain: recovery -> logging -> cors -> auth -> router
	var h http.Handler = auth.Middleware(router)
	h = middleware.CORS(corsOrigin)(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%s", port),
			Handler:      h,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.httpServer.Shutdown(ctx)
}
