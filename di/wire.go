//go:build wireinject
// +build wireinject

package di

import (
	"gymroom/config"
	"gymroom/infras/backend"
	"gymroom/infras/jwt"
	"gymroom/infras/otel"
	"gymroom/infras/redis"
	"gymroom/permissions"
	"gymroom/shared/cache"
	"gymroom/shared/metrics"
	"gymroom/transport/http"
	"gymroom/transport/http/middleware"
	"gymroom/transport/http/router"

	identityService "gymroom/internal/domains/identity/service"
	identityHandler "gymroom/internal/handlers/identity"

	roomRepository "gymroom/internal/domains/room/repository"
	roomService "gymroom/internal/domains/room/service"
	roomHandler "gymroom/internal/handlers/room"

	trainbookRepository "gymroom/internal/domains/trainbook/repository"
	trainbookService "gymroom/internal/domains/trainbook/service"
	trainbookHandler "gymroom/internal/handlers/trainbook"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	metrics.New,
	backend.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var identityDomain = wire.NewSet(
	identityService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var trainbookDomain = wire.NewSet(
	trainbookRepository.New,
	trainbookService.New,
	trainbookService.NewSubmitter,
)

var domains = wire.NewSet(
	identityDomain,
	roomDomain,
	trainbookDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	trainbookHandler.New,
	identityHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
