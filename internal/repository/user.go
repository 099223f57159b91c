package repository

import (
	"context"

	"github.com/singhdavide01/todo-api/internal/model"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (model.User, error)
}
