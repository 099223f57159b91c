package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/singhdavide01/todo-api/internal/model"
	"github.com/singhdavide01/todo-api/internal/repository"
	"github.com/singhdavide01/todo-api/internal/token"
)

// AuthService exchanges credentials for bearer tokens and resolves the
// current user for profile requests.
type AuthService struct {
	users  repository.UserRepository
	tokens *token.Service
}

func NewAuthService(users repository.UserRepository, tokens *token.Service) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login verifies the credentials and issues a token. Unknown username and
// wrong password both yield ErrInvalidCredentials; callers must not be able
// to tell them apart.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (LoginOutput, error) {
	if input.Username == "" {
		return LoginOutput{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if input.Password == "" {
		return LoginOutput{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	user, err := s.authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return LoginOutput{}, err
	}

	accessToken, err := s.tokens.Issue(user.Username)
	if err != nil {
		return LoginOutput{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return LoginOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// CurrentUser resolves a verified token subject to its profile.
func (s *AuthService) CurrentUser(ctx context.Context, username string) (model.Profile, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Profile{}, ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to resolve user: %w", err)
	}
	return user.Profile(), nil
}

func (s *AuthService) authenticate(ctx context.Context, username, password string) (model.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, ErrInvalidCredentials
		}
		return model.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return model.User{}, ErrInvalidCredentials
	}
	return user, nil
}
