package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_EnsureUser(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.EnsureUser(ctx, 1, 10, "ahmad", "Ahmad", "id"))
	require.NoError(t, svc.EnsureUser(ctx, 1, 11, "ahmad", "Ahmad", "id"))

	require.Len(t, repo.users, 1)
	u := repo.users[1]
	assert.Equal(t, int64(11), u.ChatID)
	assert.Equal(t, "Ahmad", u.FirstName)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestUserService_EnsureUserError(t *testing.T) {
	repo := &fakeUserRepo{err: errors.New("db down")}
	svc := NewUserService(repo, zap.NewNop())

	err := svc.EnsureUser(context.Background(), 1, 10, "", "", "")
	require.Error(t, err)
}
