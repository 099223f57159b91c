package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/singhdavide01/todo-api/internal/model"
)

// FileTodoRepository persists the todo collection as a single JSON array in
// one file. Every mutation is a full load-modify-save under the write lock,
// and every save replaces the file atomically (write temp, rename), so a
// crash mid-write leaves either the old or the new complete state on disk.
type FileTodoRepository struct {
	path string
	mu   sync.RWMutex

	// lastID is the highest id this instance has ever seen or issued.
	// Guarded by mu. Keeps ids strictly increasing across creates even
	// when the record holding the current maximum is deleted first.
	lastID int64
}

func NewFileTodo(path string) *FileTodoRepository {
	return &FileTodoRepository{path: path}
}

func (r *FileTodoRepository) List(ctx context.Context) ([]model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.load()
}

func (r *FileTodoRepository) Create(ctx context.Context, title string) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todos, err := r.load()
	if err != nil {
		return model.Todo{}, err
	}

	todo := model.Todo{
		ID:        r.nextID(todos),
		Title:     title,
		Completed: false,
	}
	todos = append(todos, todo)

	if err := r.save(todos); err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

func (r *FileTodoRepository) Update(ctx context.Context, id int64, patch model.TodoPatch) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todos, err := r.load()
	if err != nil {
		return model.Todo{}, err
	}

	idx := indexOf(todos, id)
	if idx < 0 {
		return model.Todo{}, ErrNotFound
	}

	if patch.Title != nil {
		todos[idx].Title = *patch.Title
	}
	if patch.Completed != nil {
		todos[idx].Completed = *patch.Completed
	}

	if err := r.save(todos); err != nil {
		return model.Todo{}, err
	}
	return todos[idx], nil
}

func (r *FileTodoRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	todos, err := r.load()
	if err != nil {
		return err
	}

	idx := indexOf(todos, id)
	if idx < 0 {
		return ErrNotFound
	}

	todos = append(todos[:idx], todos[idx+1:]...)
	return r.save(todos)
}

// load reads the full collection. An absent file is an empty collection;
// so is a malformed one (best-effort recovery rather than a fatal error).
func (r *FileTodoRepository) load() ([]model.Todo, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Todo{}, nil
		}
		return nil, fmt.Errorf("failed to read todo store: %w", err)
	}

	var todos []model.Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		slog.Warn("todo store corrupted, starting from empty collection",
			"path", r.path,
			"error", err,
		)
		return []model.Todo{}, nil
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	return todos, nil
}

// save writes the full collection to a temp file in the store's directory
// and renames it over the real path.
func (r *FileTodoRepository) save(todos []model.Todo) error {
	data, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode todo store: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp store file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp store file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace todo store: %w", err)
	}
	return nil
}

// nextID is 1 + the highest id present in the collection, floored by the
// instance high-water mark so a deleted maximum is never reissued.
// Caller must hold the write lock.
func (r *FileTodoRepository) nextID(todos []model.Todo) int64 {
	max := r.lastID
	for _, t := range todos {
		if t.ID > max {
			max = t.ID
		}
	}
	r.lastID = max + 1
	return r.lastID
}

func indexOf(todos []model.Todo, id int64) int {
	for i, t := range todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

var _ TodoRepository = (*FileTodoRepository)(nil)
