package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devmarq/bookmarkd/internal/domain/repository"
)

func newBookmarkService(repo *memBookmarkRepo) *BookmarkService {
	return NewBookmarkService(repo, nil, nil, nil, "", 0)
}

func TestBookmarkService_CreateAndList(t *testing.T) {
	store := newMemBookmarkRepo()
	svc := newBookmarkService(store)
	ctx := context.Background()

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)

	b, err := svc.Create(ctx, 1, CreateBookmarkInput{Title: "bookmark1", Link: "http://bookmark1.com"})
	require.NoError(t, err)
	assert.NotZero(t, b.ID)
	assert.Equal(t, int64(1), b.UserID)
	assert.Equal(t, "bookmark1", b.Title)
	assert.Equal(t, "http://bookmark1.com", b.Link)

	_, err = svc.Create(ctx, 1, CreateBookmarkInput{Title: "bookmark2", Link: "http://bookmark2.com"})
	require.NoError(t, err)

	list, err = svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Less(t, list[0].ID, list[1].ID)
}

func TestBookmarkService_ListScopedToOwner(t *testing.T) {
	store := newMemBookmarkRepo()
	svc := newBookmarkService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, CreateBookmarkInput{Title: "mine", Link: "http://a.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, CreateBookmarkInput{Title: "theirs", Link: "http://b.com"})
	require.NoError(t, err)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "mine", list[0].Title)
}

func TestBookmarkService_GetByID(t *testing.T) {
	store := newMemBookmarkRepo()
	svc := newBookmarkService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, CreateBookmarkInput{Title: "bookmark1", Link: "http://bookmark1.com"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, 1, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	// Absent and foreign ids both read as nothing, without error.
	got, err = svc.GetByID(ctx, 1, 888)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = svc.GetByID(ctx, 2, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBookmarkService_EditByID(t *testing.T) {
	store := newMemBookmarkRepo()
	svc := newBookmarkService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, CreateBookmarkInput{Title: "bookmark1", Link: "http://bookmark1.com"})
	require.NoError(t, err)

	got, err := svc.EditByID(ctx, 1, created.ID, repository.BookmarkPatch{
		Description: strptr("Bookmark description test"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Bookmark description test", got.Description)
	assert.Equal(t, "bookmark1", got.Title)
	assert.Equal(t, "http://bookmark1.com", got.Link)
}

func TestBookmarkService_EditByIDDenied(t *testing.T) {
	store := newMemBookmarkRepo()
	svc := newBookmarkService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, CreateBookmarkInput{Title: "bookmark1", Link: "http://bookmark1.com"})
	require.NoError(t, err)

	_, err = svc.EditByID(ctx, 1, 888, repository.BookmarkPatch{Title: strptr("x")})
	assert.ErrorIs(t, err, ErrDenied)

	_, err = svc.EditByID(ctx, 2, created.ID, repository.BookmarkPatch{Title: strptr("x")})
	assert.ErrorIs(t, err, ErrDenied)

	// The failed foreign edit must not have touched the row.
	got, err := svc.GetByID(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "bookmark1", got.Title)
}

func TestBookmarkService_DeleteByID(t *testing.T) {
	store := newMemBookmarkRepo()
	svc := newBookmarkService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, CreateBookmarkInput{Title: "bookmark1", Link: "http://bookmark1.com"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByID(ctx, 1, created.ID))

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)

	got, err := svc.GetByID(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBookmarkService_DeleteByIDDenied(t *testing.T) {
	store := newMemBookmarkRepo()
	svc := newBookmarkService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, CreateBookmarkInput{Title: "bookmark1", Link: "http://bookmark1.com"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteByID(ctx, 1, 888), ErrDenied)
	assert.ErrorIs(t, svc.DeleteByID(ctx, 2, created.ID), ErrDenied)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBookmarkService_SearchWithoutES(t *testing.T) {
	svc := newBookmarkService(newMemBookmarkRepo())

	out, err := svc.Search(context.Background(), 1, "anything", 10)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
