package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/singhdavide01/todo-api/internal/config"
	todohttp "github.com/singhdavide01/todo-api/internal/http"
	"github.com/singhdavide01/todo-api/internal/middleware"
	"github.com/singhdavide01/todo-api/internal/model"
	"github.com/singhdavide01/todo-api/internal/repository"
	"github.com/singhdavide01/todo-api/internal/service"
	"github.com/singhdavide01/todo-api/internal/token"
)

// userResolverAdapter adapts a user repository to the middleware.UserResolver
// interface, rejecting disabled users.
type userResolverAdapter struct {
	repo interface {
		GetByUsername(ctx context.Context, username string) (model.User, error)
	}
}

func (a *userResolverAdapter) ResolveUsername(ctx context.Context, subject string) (string, error) {
	user, err := a.repo.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", middleware.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to resolve user: %w", err)
	}
	if user.Disabled {
		return "", middleware.ErrUserDisabled
	}
	return user.Username, nil
}

func main() {
	// Initial logger at info level; reconfigured after config load
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(context.Background()); err != nil {
		logger.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.ParseLogLevel(),
	}))
	slog.SetDefault(logger)

	logger.Info("config loaded",
		"env", cfg.AppEnv,
		"port", cfg.ServerPort,
		"auth_dev_mode", cfg.AuthDevMode,
		"log_level", cfg.LogLevel,
		"store_path", cfg.Store.Path,
	)

	// User registry: built once, immutable afterwards
	userRepo, err := repository.LoadUsers(cfg.Auth.UsersPath)
	if err != nil {
		return err
	}
	logger.Info("user registry loaded", "path", cfg.Auth.UsersPath)

	// Todo store
	todoRepo := repository.NewFileTodo(cfg.Store.Path)

	// Token service
	tokens, err := token.New(cfg.Auth.Secret, cfg.Auth.Algorithm, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	// Services
	todoSvc := service.NewTodoService(todoRepo)
	authSvc := service.NewAuthService(userRepo, tokens)

	// Auth middleware
	authCfg := middleware.AuthConfig{
		DevMode: cfg.AuthDevMode,
	}
	if !cfg.AuthDevMode {
		authCfg.Tokens = tokens
		authCfg.UserResolver = &userResolverAdapter{repo: userRepo}
	}
	auth, err := middleware.NewAuth(authCfg)
	if err != nil {
		return fmt.Errorf("failed to create auth middleware: %w", err)
	}

	// HTTP Server
	srv := todohttp.NewServer(cfg.ServerPort, logger, todoSvc, authSvc, auth, cfg.CORS.AllowOrigin)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	logger.Info("server starting", "port", cfg.ServerPort)

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}
