package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

var validEnvs = map[string]bool{
	"local": true,
	"alpha": true,
	"beta":  true,
	"prod":  true,
}

var validAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

type Config struct {
	ServerPort  string
	AppEnv      string
	AuthDevMode bool
	LogLevel    string
	Store       StoreConfig
	Auth        AuthConfig
	CORS        CORSConfig
}

func (c Config) ParseLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) Validate() error {
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("invalid SERVER_PORT %q: %w", c.ServerPort, err)
	}
	if !validEnvs[c.AppEnv] {
		return fmt.Errorf("invalid APP_ENV %q: must be one of local, alpha, beta, prod", c.AppEnv)
	}
	if c.AuthDevMode && c.AppEnv != "local" {
		return fmt.Errorf("AUTH_DEV_MODE must not be enabled in %s environment", c.AppEnv)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("STORE_PATH must not be empty")
	}
	if c.Auth.Secret == "" {
		return fmt.Errorf("AUTH_SECRET is required and must not be hardcoded")
	}
	if !validAlgorithms[c.Auth.Algorithm] {
		return fmt.Errorf("invalid AUTH_ALGORITHM %q: must be one of HS256, HS384, HS512", c.Auth.Algorithm)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL_MINUTES must be positive, got %s", c.Auth.TokenTTL)
	}
	return nil
}

type StoreConfig struct {
	Path string
}

type AuthConfig struct {
	// Secret signs every issued token. Sourced from the environment only;
	// there is deliberately no default.
	Secret    string
	Algorithm string
	TokenTTL  time.Duration
	UsersPath string
}

type CORSConfig struct {
	AllowOrigin string
}

func Load() Config {
	return Config{
		ServerPort:  envOrDefault("SERVER_PORT", "8080"),
		AppEnv:      envOrDefault("APP_ENV", "local"),
		AuthDevMode: strings.EqualFold(envOrDefault("AUTH_DEV_MODE", "false"), "true"),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		Store: StoreConfig{
			Path: envOrDefault("STORE_PATH", "todos.json"),
		},
		Auth: AuthConfig{
			Secret:    os.Getenv("AUTH_SECRET"),
			Algorithm: envOrDefault("AUTH_ALGORITHM", "HS256"),
			TokenTTL:  time.Duration(envIntOrDefault("TOKEN_TTL_MINUTES", 30)) * time.Minute,
			UsersPath: envOrDefault("USERS_PATH", "users.json"),
		},
		CORS: CORSConfig{
			AllowOrigin: envOrDefault("CORS_ALLOW_ORIGIN", "*"),
		},
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envIntOrDefault(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}
