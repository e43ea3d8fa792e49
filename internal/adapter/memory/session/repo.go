// Package session implements the session token map over the in-memory store.
package session

import (
	"context"
	"time"

	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory"
	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// Repo provides session persistence backed by memory.DB.
// Sessions live for the lifetime of the process.
type Repo struct {
	db *memory.DB
}

// New creates a new session repository.
func New(db *memory.DB) *Repo {
	return &Repo{db: db}
}

// Create stores a session under its token.
func (r *Repo) Create(ctx context.Context, s *domain.Session) error {
	return r.db.Write(ctx, func(t *memory.Tables) error {
		if _, ok := t.Sessions[s.Token]; ok {
			return memory.AlreadyExists("session", "token")
		}
		t.Sessions[s.Token] = *s
		return nil
	})
}

// Get returns the session stored under token.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Get(ctx context.Context, token string) (*domain.Session, error) {
	var out domain.Session
	err := r.db.Read(ctx, func(t *memory.Tables) error {
		s, ok := t.Sessions[token]
		if !ok {
			return memory.NotFound("session", "token")
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the session stored under token. Deleting an unknown token is a no-op.
func (r *Repo) Delete(ctx context.Context, token string) error {
	return r.db.Write(ctx, func(t *memory.Tables) error {
		delete(t.Sessions, token)
		return nil
	})
}

// DeleteExpired removes every session expired at now and returns how many were removed.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	var count int
	err := r.db.Write(ctx, func(t *memory.Tables) error {
		for token, s := range t.Sessions {
			if s.IsExpired(now) {
				delete(t.Sessions, token)
				count++
			}
		}
		return nil
	})
	return count, err
}
