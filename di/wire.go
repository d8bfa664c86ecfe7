//go:build wireinject
// +build wireinject

package di

import (
	"packshift/config"
	"packshift/infras/kafka"
	"packshift/infras/otel"
	"packshift/infras/postgres"
	"packshift/infras/redis"
	"packshift/shared/cache"
	"packshift/transport/http"
	"packshift/transport/http/middleware"
	"packshift/transport/http/router"

	bookingRepository "packshift/internal/domains/booking/repository"
	bookingService "packshift/internal/domains/booking/service"
	contactRepository "packshift/internal/domains/contact/repository"
	contactService "packshift/internal/domains/contact/service"
	bookingHandler "packshift/internal/handlers/booking"
	contactHandler "packshift/internal/handlers/contact"
	notificationHandler "packshift/internal/handlers/notification"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	contactDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	contactHandler.New,
	notificationHandler.NewHub,
	notificationHandler.New,
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
