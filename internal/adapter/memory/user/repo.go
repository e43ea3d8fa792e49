// Package user implements the read-only User repository over the in-memory store.
package user

import (
	"context"
	"slices"
	"strings"

	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory"
	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// Repo provides user lookups backed by memory.DB.
type Repo struct {
	db *memory.DB
}

// New creates a new user repository.
func New(db *memory.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a copy of the user with the given id.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.find(ctx, id, func(u domain.User) bool { return u.ID == id })
}

// GetByEmail returns a copy of the user with the given email (case-insensitive).
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	return r.find(ctx, email, func(u domain.User) bool { return strings.EqualFold(u.Email, email) })
}

// Create appends a user. Returns domain.ErrAlreadyExists if the id or email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	return r.db.Write(ctx, func(t *memory.Tables) error {
		for _, e := range t.Users {
			if e.ID == u.ID || strings.EqualFold(e.Email, u.Email) {
				return memory.AlreadyExists("user", u.Email)
			}
		}
		t.Users = append(t.Users, *u)
		return nil
	})
}

func (r *Repo) find(ctx context.Context, key string, match func(domain.User) bool) (*domain.User, error) {
	var out domain.User
	err := r.db.Read(ctx, func(t *memory.Tables) error {
		i := slices.IndexFunc(t.Users, match)
		if i < 0 {
			return memory.NotFound("user", key)
		}
		out = t.Users[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
