package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/inventory-dashboard/internal/config"
	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// sessionRepo defines the session store interface needed by auth service.
type sessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// Service implements demo login and server-side sessions.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionRepo
	cfg      config.AuthConfig

	now      func() time.Time
	newToken func() string
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionRepo,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
		newToken: uuid.NewString,
	}
}
