package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/user"
	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

func TestRepo_Lookups(t *testing.T) {
	t.Parallel()
	repo := user.New(memory.NewDB())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{ID: "u1", Email: "admin@example.com", Role: domain.UserRoleAdmin}))
	assert.ErrorIs(t, repo.Create(ctx, &domain.User{ID: "u2", Email: "ADMIN@example.com"}), domain.ErrAlreadyExists)

	byEmail, err := repo.GetByEmail(ctx, " Admin@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	byID, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.UserRoleAdmin, byID.Role)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
