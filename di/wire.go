//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/coupon"
	"hotel/infras/jwt"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/infras/s3"
	"hotel/permissions"
	"hotel/shared/cache"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"
	kafkaTransport "hotel/transport/kafka"
	"hotel/transport/scheduler"

	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	hotelRepository "hotel/internal/domains/hotel/repository"
	hotelService "hotel/internal/domains/hotel/service"
	inventoryRepository "hotel/internal/domains/inventory/repository"
	inventoryService "hotel/internal/domains/inventory/service"
	pricingRepository "hotel/internal/domains/pricing/repository"
	pricingService "hotel/internal/domains/pricing/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	roomLogRepository "hotel/internal/domains/roomlog/repository"
	roomTypeRepository "hotel/internal/domains/roomtype/repository"
	syncService "hotel/internal/domains/sync/service"

	bookingHandler "hotel/internal/handlers/booking"
	healthHandler "hotel/internal/handlers/health"
	hotelHandler "hotel/internal/handlers/hotel"
	inventoryHandler "hotel/internal/handlers/inventory"
	pricingHandler "hotel/internal/handlers/pricing"
	roomHandler "hotel/internal/handlers/room"
	syncHandler "hotel/internal/handlers/sync"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	coupon.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	hotelRepository.New,
	roomTypeRepository.New,
	roomRepository.New,
	roomLogRepository.New,
	bookingRepository.New,
	inventoryRepository.New,
	pricingRepository.New,
)

var inventoryDomain = wire.NewSet(
	inventoryService.New,
	wire.Bind(new(inventoryService.Inventory), new(inventoryService.Service)),
	wire.Bind(new(inventoryService.Guard), new(inventoryService.Service)),
)

var domains = wire.NewSet(
	repositories,
	inventoryDomain,
	pricingService.New,
	bookingService.New,
	hotelService.New,
	roomService.New,
	syncService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	inventoryHandler.New,
	pricingHandler.New,
	bookingHandler.New,
	hotelHandler.New,
	roomHandler.New,
	syncHandler.New,
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

func InitializeScheduler() *scheduler.Scheduler {
	wire.Build(
		configurations,
		infrastructures,
		repositories,
		inventoryDomain,
		scheduler.New,
	)

	return &scheduler.Scheduler{}
}

func InitializeConsumer() *kafkaTransport.Consumer {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		kafkaTransport.New,
	)

	return &kafkaTransport.Consumer{}
}
