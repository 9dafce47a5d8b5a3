package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devmarq/bookmarkd/internal/domain/entity"
	"github.com/devmarq/bookmarkd/internal/domain/repository"
)

func seedUser(t *testing.T, users *memUserRepo, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, PasswordHash: "irrelevant", FirstName: "First", LastName: "Last"}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestUserService_GetCurrentUser(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, nil, "", nil)
	ctx := context.Background()

	u := seedUser(t, users, "test1@test.com")

	got, err := svc.GetCurrentUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "test1@test.com", got.Email)

	_, err = svc.GetCurrentUser(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_EditUser(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, nil, "", nil)
	ctx := context.Background()

	u := seedUser(t, users, "test1@test.com")

	// Patch a single field; the others keep their values.
	got, err := svc.EditUser(ctx, u.ID, repository.UserPatch{FirstName: strptr("Changed")})
	require.NoError(t, err)
	assert.Equal(t, "Changed", got.FirstName)
	assert.Equal(t, "Last", got.LastName)
	assert.Equal(t, "test1@test.com", got.Email)

	got, err = svc.EditUser(ctx, u.ID, repository.UserPatch{
		Email:    strptr("new@test.com"),
		LastName: strptr("Renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new@test.com", got.Email)
	assert.Equal(t, "Changed", got.FirstName)
	assert.Equal(t, "Renamed", got.LastName)
}

func TestUserService_EditUserDuplicateEmail(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, nil, "", nil)
	ctx := context.Background()

	seedUser(t, users, "taken@test.com")
	u := seedUser(t, users, "test1@test.com")

	_, err := svc.EditUser(ctx, u.ID, repository.UserPatch{Email: strptr("taken@test.com")})
	assert.ErrorIs(t, err, ErrCredentialsTaken)
}

func TestUserService_EditUserNotFound(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, nil, "", nil)

	_, err := svc.EditUser(context.Background(), 42, repository.UserPatch{FirstName: strptr("X")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UploadAvatarUnconfigured(t *testing.T) {
	users := newMemUserRepo()
	svc := NewUserService(users, nil, "", nil)

	_, err := svc.UploadAvatar(context.Background(), 1, nil, "a.png", "image/png")
	assert.Error(t, err)
}
