package http

import (
	"net/http"

	"github.com/singhdavide01/todo-api/internal/http/handler"
	"github.com/singhdavide01/todo-api/internal/service"
)

func NewRouter(todoSvc *service.TodoService, authSvc *service.AuthService) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/health", handler.NewHealthHandler())

	// Credential exchange; the auth middleware exempts this path
	mux.Handle("/token", handler.NewAuthHandler(authSvc))

	mux.Handle("/users/me", handler.NewUserHandler(authSvc))

	todoHandler := handler.NewTodoHandler(todoSvc)
	mux.Handle("/todos", todoHandler)
	mux.Handle("/todos/", todoHandler)

	return mux
}
