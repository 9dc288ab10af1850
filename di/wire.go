//go:build wireinject
// +build wireinject

package di

import (
	"libdash/config"
	"libdash/infras/jwt"
	"libdash/infras/kafka"
	"libdash/infras/otel"
	"libdash/infras/redis"
	"libdash/infras/s3"
	"libdash/infras/sheets"
	"libdash/shared/cache"
	"libdash/transport/http"
	"libdash/transport/http/middleware"
	"libdash/transport/http/router"

	authService "libdash/internal/domains/auth/service"
	reportService "libdash/internal/domains/report/service"

	"github.com/google/wire"

	authHandler "libdash/internal/handlers/auth"
	reportHandler "libdash/internal/handlers/report"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	sheets.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	reportDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	reportHandler.New,
	authHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
