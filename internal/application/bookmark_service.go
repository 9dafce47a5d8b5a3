package application

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/devmarq/bookmarkd/internal/domain/entity"
	repo "github.com/devmarq/bookmarkd/internal/domain/repository"
	"github.com/devmarq/bookmarkd/pkg/helpers"
)

// BookmarkService executes ownership-scoped bookmark operations. Redis and
// Elasticsearch are optional accelerators; a nil client disables them without
// changing any contract.
type BookmarkService struct {
	Repo     repo.BookmarkRepository
	Redis    *redis.Client
	Logger   *logrus.Logger
	ES       *elasticsearch.Client
	ESIndex  string
	CacheTTL time.Duration
}

func NewBookmarkService(r repo.BookmarkRepository, rdb *redis.Client, logger *logrus.Logger, es *elasticsearch.Client, esIndex string, cacheTTL time.Duration) *BookmarkService {
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &BookmarkService{Repo: r, Redis: rdb, Logger: logger, ES: es, ESIndex: esIndex, CacheTTL: cacheTTL}
}

// CreateBookmarkInput carries the validated fields for a new bookmark.
type CreateBookmarkInput struct {
	Title       string
	Description string
	Link        string
}

func listCacheKey(userID int64) string {
	return "user:bookmarks:" + strconv.FormatInt(userID, 10)
}

// List returns every bookmark owned by userID, in store-native order.
func (s *BookmarkService) List(ctx context.Context, userID int64) ([]entity.Bookmark, error) {
	if s.Redis != nil {
		var cached []entity.Bookmark
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, listCacheKey(userID), &cached); err == nil && ok {
			return cached, nil
		}
	}
	list, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, listCacheKey(userID), list, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("bookmark list cache write failed")
		}
	}
	return list, nil
}

// GetByID returns the bookmark matching both id and owner, or nil when no
// such row is visible to the caller. A bookmark owned by someone else and a
// bookmark that does not exist are indistinguishable here.
func (s *BookmarkService) GetByID(ctx context.Context, userID, bookmarkID int64) (*entity.Bookmark, error) {
	b, err := s.Repo.GetByID(ctx, userID, bookmarkID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

// Create inserts a new bookmark owned by userID.
func (s *BookmarkService) Create(ctx context.Context, userID int64, in CreateBookmarkInput) (*entity.Bookmark, error) {
	b := &entity.Bookmark{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, err
	}
	s.invalidateList(ctx, userID)
	s.indexBookmark(ctx, b)
	return b, nil
}

// EditByID applies a partial update in one conditional write scoped by id and
// owner. A missing or foreign bookmark yields ErrDenied.
func (s *BookmarkService) EditByID(ctx context.Context, userID, bookmarkID int64, patch repo.BookmarkPatch) (*entity.Bookmark, error) {
	b, err := s.Repo.UpdateOwned(ctx, userID, bookmarkID, patch)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrDenied
		}
		return nil, err
	}
	s.invalidateList(ctx, userID)
	s.indexBookmark(ctx, b)
	return b, nil
}

// DeleteByID removes the bookmark in one conditional write scoped by id and
// owner. A missing or foreign bookmark yields ErrDenied.
func (s *BookmarkService) DeleteByID(ctx context.Context, userID, bookmarkID int64) error {
	if err := s.Repo.DeleteOwned(ctx, userID, bookmarkID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrDenied
		}
		return err
	}
	s.invalidateList(ctx, userID)
	s.deleteFromIndex(ctx, bookmarkID)
	return nil
}

func (s *BookmarkService) invalidateList(ctx context.Context, userID int64) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, listCacheKey(userID)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("bookmark list cache invalidation failed")
	}
}

func (s *BookmarkService) indexBookmark(ctx context.Context, b *entity.Bookmark) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          b.ID,
		"user_id":     b.UserID,
		"title":       b.Title,
		"description": b.Description,
		"link":        b.Link,
		"created_at":  b.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":  b.UpdatedAt.Format(time.RFC3339Nano),
	}
	body, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESIndex,
		DocumentID: strconv.FormatInt(b.ID, 10),
		Body:       strings.NewReader(string(body)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("bookmark_id", b.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("bookmark_id", b.ID).Warn("es index response error")
	}
}

func (s *BookmarkService) deleteFromIndex(ctx context.Context, bookmarkID int64) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{
		Index:      s.ESIndex,
		DocumentID: strconv.FormatInt(bookmarkID, 10),
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("bookmark_id", bookmarkID).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search runs a multi_match query over the caller's own bookmarks. Returns an
// empty slice when Elasticsearch is not configured.
func (s *BookmarkService) Search(ctx context.Context, userID int64, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":  q,
						"fields": []string{"title^2", "description", "link"},
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"user_id": userID},
				},
			},
		},
		"size": size,
	}
	body, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(body))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
