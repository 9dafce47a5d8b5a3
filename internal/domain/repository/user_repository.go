package repository

import (
	"context"
	"errors"

	"github.com/devmarq/bookmarkd/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no row matches the requested scope.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned on a unique-key violation for users.email.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserPatch is a partial profile update; nil fields are left unchanged.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// UserRepository defines user persistence operations.
type UserRepository interface {
	// Create inserts the user and fills ID and timestamps.
	// Returns ErrDuplicateEmail when the email is already taken.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateProfile applies the non-nil patch fields to the user row.
	UpdateProfile(ctx context.Context, id int64, patch UserPatch) (*entity.User, error)
	SetAvatarURL(ctx context.Context, id int64, url string) (*entity.User, error)
}
