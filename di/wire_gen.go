// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"libdash/config"
	"libdash/infras/jwt"
	"libdash/infras/kafka"
	"libdash/infras/otel"
	"libdash/infras/redis"
	"libdash/infras/s3"
	"libdash/infras/sheets"
	"libdash/internal/domains/auth/service"
	service2 "libdash/internal/domains/report/service"
	"libdash/internal/handlers/auth"
	"libdash/internal/handlers/report"
	"libdash/shared/cache"
	"libdash/transport/http"
	"libdash/transport/http/middleware"
	"libdash/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *App {
	configConfig := config.Get()
	otelOtel := otel.New(configConfig)
	client := sheets.New(configConfig, otelOtel)
	redisClient := redis.New(configConfig)
	redisCache := cache.NewRedisCache(redisClient, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(client, configConfig, redisCache, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	producer := kafka.New(configConfig)
	serviceReport := service2.New(configConfig, client, redisCache, s3S3, producer, otelOtel)
	reportHandler := report.New(serviceReport, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:   handler,
		Report: reportHandler,
	}
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	middlewareAuth := middleware.NewAuthMiddleware(jwtJWT, otelOtel, configConfig)
	routerRouter := router.New(domainHandlers, appMiddleware, middlewareAuth, configConfig)
	httpHTTP := http.New(configConfig, routerRouter)
	app := &App{
		Config: configConfig,
		HTTP:   httpHTTP,
		Report: serviceReport,
	}
	return app
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(otel.New, redis.New, jwt.New, sheets.New, s3.New, kafka.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var reportDomain = wire.NewSet(service2.New)

var authDomain = wire.NewSet(service.New)

var domains = wire.NewSet(
	reportDomain,
	authDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), report.New, auth.New, router.New)
