package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
	"github.com/heartmarshall/inventory-dashboard/pkg/ctxutil"
)

// Logout deletes the session. Unknown tokens are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrUnauthorized
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID))
	}
	return nil
}

// ResolveSession returns the user owning token. An expired session is
// deleted on read. Returns ErrUnauthorized for unknown or expired tokens.
func (s *Service) ResolveSession(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.ResolveSession: %w", err)
	}

	if session.IsExpired(s.now()) {
		if err := s.sessions.Delete(ctx, token); err != nil {
			return nil, fmt.Errorf("auth.ResolveSession delete expired: %w", err)
		}
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.ResolveSession get user: %w", err)
	}
	return user, nil
}

// CurrentUser returns the authenticated user from context.
// Returns ErrUnauthorized for anonymous requests.
func (s *Service) CurrentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.CurrentUser: %w", err)
	}
	return user, nil
}

// CleanupExpiredSessions removes all expired sessions.
// Returns the number of sessions deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredSessions(ctx context.Context) (int, error) {
	count, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		s.log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredSessions: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired sessions", slog.Int("count", count))
	}

	return count, nil
}
