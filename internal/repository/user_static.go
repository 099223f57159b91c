package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/singhdavide01/todo-api/internal/model"
)

// UserEntry is one record in the registry file. Either HashedPassword
// (a bcrypt hash) or Password (plaintext, hashed during load and never
// retained) must be set.
type UserEntry struct {
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Password       string `json:"password,omitempty"`
	HashedPassword string `json:"hashed_password,omitempty"`
	Disabled       bool   `json:"disabled"`
}

// StaticUserRepository is the read-only user registry, built once at
// startup. It is never mutated afterwards, so lookups need no locking.
type StaticUserRepository struct {
	users map[string]model.User
}

// NewStaticUser builds the registry from entries. Plaintext passwords are
// bcrypt-hashed here; the source entries are not kept.
func NewStaticUser(entries []UserEntry) (*StaticUserRepository, error) {
	users := make(map[string]model.User, len(entries))
	for _, e := range entries {
		if e.Username == "" {
			return nil, fmt.Errorf("user registry: entry with empty username")
		}
		if _, exists := users[e.Username]; exists {
			return nil, fmt.Errorf("user registry: duplicate username %q", e.Username)
		}

		hash := e.HashedPassword
		if hash == "" {
			if e.Password == "" {
				return nil, fmt.Errorf("user registry: user %q has no password or hashed_password", e.Username)
			}
			hashed, err := bcrypt.GenerateFromPassword([]byte(e.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("user registry: failed to hash password for %q: %w", e.Username, err)
			}
			hash = string(hashed)
		}

		users[e.Username] = model.User{
			Username:       e.Username,
			FullName:       e.FullName,
			Email:          e.Email,
			HashedPassword: hash,
			Disabled:       e.Disabled,
		}
	}
	return &StaticUserRepository{users: users}, nil
}

// LoadUsers reads a registry file holding a JSON array of UserEntry.
func LoadUsers(path string) (*StaticUserRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read user registry %s: %w", path, err)
	}

	var entries []UserEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse user registry %s: %w", path, err)
	}
	return NewStaticUser(entries)
}

func (r *StaticUserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	user, ok := r.users[username]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return user, nil
}

var _ UserRepository = (*StaticUserRepository)(nil)
