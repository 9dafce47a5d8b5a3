package router

import (
	"github.com/devmarq/bookmarkd/internal/application"
	"github.com/devmarq/bookmarkd/internal/container"
	pginfra "github.com/devmarq/bookmarkd/internal/infrastructure/postgres"
	handlers "github.com/devmarq/bookmarkd/internal/interface/http"
	"github.com/devmarq/bookmarkd/internal/router/modules"
)

func buildAuthModule() Module {
	cfg := container.GetConfig()
	users := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewAuthService(
		users,
		container.GetJWT(),
		container.GetRabbitPub(),
		container.GetLogger(),
		cfg.AppName,
	)
	return modules.NewAuthModule(handlers.NewAuthHandler(svc, container.GetLogger()))
}

func buildUserModule() Module {
	cfg := container.GetConfig()
	users := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewUserService(
		users,
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetLogger(),
	)
	return modules.NewUserModule(handlers.NewUserHandler(svc, container.GetLogger()), container.GetJWT())
}

func buildBookmarkModule() Module {
	cfg := container.GetConfig()
	bookmarks := pginfra.NewBookmarkRepository(container.GetPGPool())
	svc := application.NewBookmarkService(
		bookmarks,
		container.GetRedis(),
		container.GetLogger(),
		container.GetES(),
		cfg.ESBookmarksIndex,
		cfg.CacheTTL,
	)
	return modules.NewBookmarkModule(handlers.NewBookmarkHandler(svc, container.GetLogger()), container.GetJWT())
}

// InitModules initializes all application modules and registers them with the
// router registry. Call once during startup.
func InitModules(r *Registry) {
	r.Add(buildAuthModule())
	r.Add(buildUserModule())
	r.Add(buildBookmarkModule())
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
