//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/internal/console"
	"hotel/permissions"
	"hotel/shared/cache"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	"github.com/google/wire"

	accessService "hotel/internal/domains/access/service"
	authService "hotel/internal/domains/auth/service"
	availabilityService "hotel/internal/domains/availability/service"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	hotelRepository "hotel/internal/domains/hotel/repository"
	hotelService "hotel/internal/domains/hotel/service"
	repairRepository "hotel/internal/domains/repair/repository"
	repairService "hotel/internal/domains/repair/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	userRepository "hotel/internal/domains/user/repository"
	authHandler "hotel/internal/handlers/auth"
	bookingHandler "hotel/internal/handlers/booking"
	hotelHandler "hotel/internal/handlers/hotel"
	repairHandler "hotel/internal/handlers/repair"
	roomHandler "hotel/internal/handlers/room"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	connection,
	postgres.NewTransactor,
	tracer,
	producer,
)

var sessionInfrastructures = wire.NewSet(
	redis.New,
	cache.NewRedisCache,
	jwt.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var repositories = wire.NewSet(
	userRepository.New,
	hotelRepository.New,
	roomRepository.New,
	bookingRepository.New,
	repairRepository.New,
)

var domains = wire.NewSet(
	accessService.New,
	authService.New,
	hotelService.New,
	availabilityService.New,
	roomService.New,
	bookingService.New,
	repairService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authService.NewToken,
	authHandler.New,
	hotelHandler.New,
	roomHandler.New,
	bookingHandler.New,
	repairHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		sessionInfrastructures,
		middlewares,
		repositories,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil, nil
}

func InitializeConsole() (*console.Console, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		repositories,
		domains,
		console.New,
	)

	return &console.Console{}, nil, nil
}
