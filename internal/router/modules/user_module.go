package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devmarq/bookmarkd/internal/container"
	handlers "github.com/devmarq/bookmarkd/internal/interface/http"
	"github.com/devmarq/bookmarkd/internal/interface/middleware"
	"github.com/devmarq/bookmarkd/pkg/helpers"
)

// UserModule wires the profile endpoints behind bearer auth.
// Protected: GET /api/users/curr, PATCH /api/users, POST /api/users/avatar
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/users/curr", m.Handler.GetCurrent)
		auth.PATCH("/users", m.Handler.Edit)
		auth.POST("/users/avatar", m.Handler.UploadAvatar)
	}
}
