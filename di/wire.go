//go:build wireinject
// +build wireinject

package di

import (
	"intervuex/config"
	"intervuex/infras/jwt"
	"intervuex/infras/kafka"
	"intervuex/infras/otel"
	"intervuex/infras/postgres"
	"intervuex/infras/redis"
	"intervuex/permissions"
	"intervuex/shared/cache"
	"intervuex/transport/http"
	"intervuex/transport/http/middleware"
	"intervuex/transport/http/router"

	authService "intervuex/internal/domains/auth/service"
	availabilityRepository "intervuex/internal/domains/availability/repository"
	availabilityService "intervuex/internal/domains/availability/service"
	bookingRepository "intervuex/internal/domains/booking/repository"
	bookingService "intervuex/internal/domains/booking/service"
	ledgerRepository "intervuex/internal/domains/ledger/repository"
	ledgerService "intervuex/internal/domains/ledger/service"
	userRepository "intervuex/internal/domains/user/repository"
	userService "intervuex/internal/domains/user/service"

	authHandler "intervuex/internal/handlers/auth"
	availabilityHandler "intervuex/internal/handlers/availability"
	bookingHandler "intervuex/internal/handlers/booking"
	userHandler "intervuex/internal/handlers/user"
	walletHandler "intervuex/internal/handlers/wallet"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.NewRule,
	availabilityRepository.NewBlockedDate,
	availabilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var ledgerDomain = wire.NewSet(
	ledgerRepository.New,
	ledgerService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	availabilityDomain,
	bookingDomain,
	ledgerDomain,
	userDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	availabilityHandler.New,
	bookingHandler.New,
	userHandler.New,
	walletHandler.New,
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
