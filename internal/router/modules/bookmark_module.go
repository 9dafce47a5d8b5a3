package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devmarq/bookmarkd/internal/container"
	handlers "github.com/devmarq/bookmarkd/internal/interface/http"
	"github.com/devmarq/bookmarkd/internal/interface/middleware"
	"github.com/devmarq/bookmarkd/pkg/helpers"
)

// BookmarkModule wires the ownership-scoped bookmark endpoints behind bearer
// auth. The search route is registered before /:id so Gin does not treat
// "search" as an id.
type BookmarkModule struct {
	Handler *handlers.BookmarkHandler
	JWT     *helpers.JWTManager
}

func NewBookmarkModule(h *handlers.BookmarkHandler, jwt *helpers.JWTManager) *BookmarkModule {
	return &BookmarkModule{Handler: h, JWT: jwt}
}

func (m *BookmarkModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/bookmarks", m.Handler.List)
		auth.GET("/bookmarks/search", m.Handler.Search)
		auth.GET("/bookmarks/:id", m.Handler.GetByID)
		auth.POST("/bookmarks", m.Handler.Create)
		auth.PATCH("/bookmarks/:id", m.Handler.Edit)
		auth.DELETE("/bookmarks/:id", m.Handler.Delete)
	}
}
