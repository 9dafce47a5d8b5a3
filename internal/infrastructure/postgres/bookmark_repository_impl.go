package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devmarq/bookmarkd/internal/domain/entity"
	"github.com/devmarq/bookmarkd/internal/domain/repository"
)

type BookmarkRepository struct {
	pool *pgxpool.Pool
}

func NewBookmarkRepository(pool *pgxpool.Pool) *BookmarkRepository {
	return &BookmarkRepository{pool: pool}
}

const bookmarkColumns = `id, user_id, title, description, link, created_at, updated_at`

func scanBookmark(row pgx.Row) (*entity.Bookmark, error) {
	b := &entity.Bookmark{}
	err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.Link,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *BookmarkRepository) Create(ctx context.Context, b *entity.Bookmark) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO bookmarks (user_id, title, description, link)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, b.UserID, b.Title, b.Description, b.Link)
	return row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BookmarkRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Bookmark, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookmarkColumns+`
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entity.Bookmark, 0)
	for rows.Next() {
		var b entity.Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.Link,
			&b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *BookmarkRepository) GetByID(ctx context.Context, userID, id int64) (*entity.Bookmark, error) {
	return scanBookmark(r.pool.QueryRow(ctx, `
		SELECT `+bookmarkColumns+`
		FROM bookmarks
		WHERE id = $1 AND user_id = $2
	`, id, userID))
}

// UpdateOwned is a single conditional write: the WHERE clause carries both id
// and owner, so ownership and existence are checked atomically with the
// update itself. Zero rows affected means absent or foreign.
func (r *BookmarkRepository) UpdateOwned(ctx context.Context, userID, id int64, patch repository.BookmarkPatch) (*entity.Bookmark, error) {
	return scanBookmark(r.pool.QueryRow(ctx, `
		UPDATE bookmarks
		SET title       = COALESCE($3, title),
		    description = COALESCE($4, description),
		    link        = COALESCE($5, link),
		    updated_at  = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+bookmarkColumns+`
	`, id, userID, patch.Title, patch.Description, patch.Link))
}

func (r *BookmarkRepository) DeleteOwned(ctx context.Context, userID, id int64) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM bookmarks
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.BookmarkRepository = (*BookmarkRepository)(nil)
