//go:build wireinject
// +build wireinject

package di

import (
	"arthive/config"
	"arthive/infras/jwt"
	"arthive/infras/kafka"
	"arthive/infras/otel"
	"arthive/infras/postgres"
	"arthive/infras/redis"
	"arthive/infras/s3"
	"arthive/shared/cache"
	"arthive/transport/http"
	"arthive/transport/http/middleware"
	"arthive/transport/http/router"

	"github.com/google/wire"

	analyticsRepository "arthive/internal/domains/analytics/repository"
	analyticsService "arthive/internal/domains/analytics/service"
	artistRepository "arthive/internal/domains/artist/repository"
	artistService "arthive/internal/domains/artist/service"
	authService "arthive/internal/domains/auth/service"
	contactRepository "arthive/internal/domains/contact/repository"
	contactService "arthive/internal/domains/contact/service"
	exhibitionRepository "arthive/internal/domains/exhibition/repository"
	exhibitionService "arthive/internal/domains/exhibition/service"
	newsletterRepository "arthive/internal/domains/newsletter/repository"
	newsletterService "arthive/internal/domains/newsletter/service"
	tagRepository "arthive/internal/domains/tag/repository"
	tagService "arthive/internal/domains/tag/service"
	userRepository "arthive/internal/domains/user/repository"
	userService "arthive/internal/domains/user/service"
	venueRepository "arthive/internal/domains/venue/repository"
	venueService "arthive/internal/domains/venue/service"

	analyticsHandler "arthive/internal/handlers/analytics"
	artistHandler "arthive/internal/handlers/artist"
	authHandler "arthive/internal/handlers/auth"
	contactHandler "arthive/internal/handlers/contact"
	exhibitionHandler "arthive/internal/handlers/exhibition"
	newsletterHandler "arthive/internal/handlers/newsletter"
	tagHandler "arthive/internal/handlers/tag"
	userHandler "arthive/internal/handlers/user"
	venueHandler "arthive/internal/handlers/venue"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var exhibitionDomain = wire.NewSet(
	exhibitionRepository.New,
	exhibitionService.New,
)

var venueDomain = wire.NewSet(
	venueRepository.New,
	venueService.New,
)

var artistDomain = wire.NewSet(
	artistRepository.New,
	artistService.New,
)

var tagDomain = wire.NewSet(
	tagRepository.New,
	tagService.New,
)

var accountDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var auxiliaryDomains = wire.NewSet(
	newsletterRepository.New,
	newsletterService.New,
	contactRepository.New,
	contactService.New,
	analyticsRepository.New,
	analyticsService.New,
)

var domains = wire.NewSet(
	exhibitionDomain,
	venueDomain,
	artistDomain,
	tagDomain,
	accountDomain,
	auxiliaryDomains,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	exhibitionHandler.New,
	venueHandler.New,
	artistHandler.New,
	tagHandler.New,
	newsletterHandler.New,
	contactHandler.New,
	analyticsHandler.New,
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
