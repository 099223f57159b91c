package repository

import (
	"context"
	"errors"

	"github.com/singhdavide01/todo-api/internal/model"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

type TodoRepository interface {
	List(ctx context.Context) ([]model.Todo, error)
	Create(ctx context.Context, title string) (model.Todo, error)
	Update(ctx context.Context, id int64, patch model.TodoPatch) (model.Todo, error)
	Delete(ctx context.Context, id int64) error
}
