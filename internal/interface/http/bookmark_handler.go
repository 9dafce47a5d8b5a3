package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devmarq/bookmarkd/internal/application"
	repo "github.com/devmarq/bookmarkd/internal/domain/repository"
	"github.com/devmarq/bookmarkd/internal/interface/middleware"
	"github.com/devmarq/bookmarkd/pkg/response"
	"github.com/devmarq/bookmarkd/pkg/validation"
)

type BookmarkHandler struct {
	Svc    *application.BookmarkService
	Logger *logrus.Logger
}

func NewBookmarkHandler(svc *application.BookmarkService, logger *logrus.Logger) *BookmarkHandler {
	return &BookmarkHandler{Svc: svc, Logger: logger}
}

type createBookmarkRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Link        string `json:"link" binding:"required,url"`
}

type editBookmarkRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Link        *string `json:"link" binding:"omitempty,url"`
}

func bookmarkID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid bookmark id", nil)
		return 0, false
	}
	return id, true
}

// List GET /api/bookmarks
func (h *BookmarkHandler) List(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	list, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Error("list bookmarks failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to list bookmarks", nil)
		return
	}
	response.Success(c, http.StatusOK, toBookmarkResponses(list), "bookmarks", nil)
}

// GetByID GET /api/bookmarks/:id — an id that does not exist and an id owned
// by another user both produce an empty result.
func (h *BookmarkHandler) GetByID(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	id, ok := bookmarkID(c)
	if !ok {
		return
	}
	b, err := h.Svc.GetByID(c.Request.Context(), uid, id)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Error("get bookmark failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to get bookmark", nil)
		return
	}
	if b == nil {
		response.Success[any](c, http.StatusOK, nil, "bookmark", nil)
		return
	}
	response.Success(c, http.StatusOK, toBookmarkResponse(b), "bookmark", nil)
}

// Create POST /api/bookmarks
func (h *BookmarkHandler) Create(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	var req createBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	b, err := h.Svc.Create(c.Request.Context(), uid, application.CreateBookmarkInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Error("create bookmark failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to create bookmark", nil)
		return
	}
	response.Success(c, http.StatusCreated, toBookmarkResponse(b), "bookmark created", nil)
}

// Edit PATCH /api/bookmarks/:id
func (h *BookmarkHandler) Edit(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	id, ok := bookmarkID(c)
	if !ok {
		return
	}
	var req editBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	b, err := h.Svc.EditByID(c.Request.Context(), uid, id, repo.BookmarkPatch{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		if errors.Is(err, application.ErrDenied) {
			response.Error[any](c, http.StatusForbidden, "access to resource denied", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Error("edit bookmark failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to edit bookmark", nil)
		return
	}
	response.Success(c, http.StatusOK, toBookmarkResponse(b), "bookmark updated", nil)
}

// Delete DELETE /api/bookmarks/:id
func (h *BookmarkHandler) Delete(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	id, ok := bookmarkID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteByID(c.Request.Context(), uid, id); err != nil {
		if errors.Is(err, application.ErrDenied) {
			response.Error[any](c, http.StatusForbidden, "access to resource denied", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Error("delete bookmark failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to delete bookmark", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search GET /api/bookmarks/search?q=
func (h *BookmarkHandler) Search(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), uid, q, size)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Error("search bookmarks failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}
