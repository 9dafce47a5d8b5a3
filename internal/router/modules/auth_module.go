package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devmarq/bookmarkd/internal/container"
	handlers "github.com/devmarq/bookmarkd/internal/interface/http"
	"github.com/devmarq/bookmarkd/internal/interface/middleware"
)

// AuthModule exposes the public signup/signin endpoints.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	signinLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/auth/signin", signinLimiter, m.Handler.Signin)
}
