package repository

import (
	"context"

	"github.com/devmarq/bookmarkd/internal/domain/entity"
)

// BookmarkPatch is a partial bookmark update; nil fields are left unchanged.
type BookmarkPatch struct {
	Title       *string
	Description *string
	Link        *string
}

// BookmarkRepository defines bookmark persistence operations. Every method
// that takes a userID is scoped to rows owned by that user; a row that exists
// but belongs to someone else behaves exactly like a row that does not exist.
type BookmarkRepository interface {
	// Create inserts the bookmark and fills ID and timestamps.
	Create(ctx context.Context, b *entity.Bookmark) error
	ListByUser(ctx context.Context, userID int64) ([]entity.Bookmark, error)
	// GetByID returns ErrNotFound when the id does not exist or is not owned
	// by userID.
	GetByID(ctx context.Context, userID, id int64) (*entity.Bookmark, error)
	// UpdateOwned applies the patch in a single conditional write scoped by
	// id AND owner. Returns ErrNotFound when no row was affected.
	UpdateOwned(ctx context.Context, userID, id int64, patch BookmarkPatch) (*entity.Bookmark, error)
	// DeleteOwned removes the row in a single conditional write scoped by
	// id AND owner. Returns ErrNotFound when no row was affected.
	DeleteOwned(ctx context.Context, userID, id int64) error
}
