package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/devmarq/bookmarkd/internal/domain/entity"
	"github.com/devmarq/bookmarkd/internal/domain/repository"
)

// In-memory repository fakes mirroring the Postgres implementations,
// including ownership scoping and unique-email behavior.

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{rows: map[int64]entity.User{}}
}

func (r *memUserRepo) emailTaken(email string, excludeID int64) bool {
	for _, u := range r.rows {
		if u.Email == email && u.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTaken(u.Email, 0) {
		return repository.ErrDuplicateEmail
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.rows[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) UpdateProfile(_ context.Context, id int64, patch repository.UserPatch) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Email != nil {
		if r.emailTaken(*patch.Email, id) {
			return nil, repository.ErrDuplicateEmail
		}
		u.Email = *patch.Email
	}
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	u.UpdatedAt = time.Now()
	r.rows[id] = u
	return &u, nil
}

func (r *memUserRepo) SetAvatarURL(_ context.Context, id int64, url string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.AvatarURL = url
	u.UpdatedAt = time.Now()
	r.rows[id] = u
	return &u, nil
}

type memBookmarkRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]entity.Bookmark
}

func newMemBookmarkRepo() *memBookmarkRepo {
	return &memBookmarkRepo{rows: map[int64]entity.Bookmark{}}
}

func (r *memBookmarkRepo) Create(_ context.Context, b *entity.Bookmark) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	b.ID = r.nextID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	r.rows[b.ID] = *b
	return nil
}

func (r *memBookmarkRepo) ListByUser(_ context.Context, userID int64) ([]entity.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]entity.Bookmark, 0)
	for _, b := range r.rows {
		if b.UserID == userID {
			list = append(list, b)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *memBookmarkRepo) GetByID(_ context.Context, userID, id int64) (*entity.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.rows[id]
	if !ok || b.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (r *memBookmarkRepo) UpdateOwned(_ context.Context, userID, id int64, patch repository.BookmarkPatch) (*entity.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.rows[id]
	if !ok || b.UserID != userID {
		return nil, repository.ErrNotFound
	}
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Description != nil {
		b.Description = *patch.Description
	}
	if patch.Link != nil {
		b.Link = *patch.Link
	}
	b.UpdatedAt = time.Now()
	r.rows[id] = b
	return &b, nil
}

func (r *memBookmarkRepo) DeleteOwned(_ context.Context, userID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.rows[id]
	if !ok || b.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func strptr(s string) *string { return &s }
