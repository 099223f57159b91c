package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/singhdavide01/todo-api/internal/model"
	"github.com/singhdavide01/todo-api/internal/repository"
)

type CreateTodoInput struct {
	Title string
}

type UpdateTodoInput struct {
	Title     *string
	Completed *bool
}

type TodoService struct {
	repo repository.TodoRepository
}

func NewTodoService(repo repository.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) List(ctx context.Context) ([]model.Todo, error) {
	todos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// Create trims surrounding whitespace from the title and rejects titles
// that are empty after trimming.
func (s *TodoService) Create(ctx context.Context, input CreateTodoInput) (model.Todo, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Todo{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	created, err := s.repo.Create(ctx, title)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}
	return created, nil
}

// Update applies only the fields present in the input. A present title is
// trimmed and must be non-empty; a present completed flag is applied as-is.
func (s *TodoService) Update(ctx context.Context, todoID int64, input UpdateTodoInput) (model.Todo, error) {
	patch := model.TodoPatch{Completed: input.Completed}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return model.Todo{}, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		patch.Title = &title
	}

	updated, err := s.repo.Update(ctx, todoID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Todo{}, ErrNotFound
		}
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}
	return updated, nil
}

func (s *TodoService) Delete(ctx context.Context, todoID int64) error {
	if err := s.repo.Delete(ctx, todoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}
