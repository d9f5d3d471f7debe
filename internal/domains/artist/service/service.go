package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"arthive/config"
	"arthive/infras/otel"
	"arthive/internal/domains/artist/model"
	"arthive/internal/domains/artist/model/dto"
	"arthive/internal/domains/artist/repository"
	"arthive/shared"
	"arthive/shared/cache"
	"arthive/shared/constant"
	gDto "arthive/shared/dto"
	"arthive/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllArtists = "artist:gets"
)

type Artist interface {
	GetAll(ctx context.Context, params gDto.QueryParams, name string) (dto.GetArtistsResponse, error)
	Get(ctx context.Context, id string) (dto.ArtistResponse, error)
	Create(ctx context.Context, req dto.CreateArtistRequest) (string, error)
	Update(ctx context.Context, req dto.UpdateArtistRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Artist
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Artist, cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel) Artist {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: redisCache,
		otel:  otl,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, name string) (res dto.GetArtistsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".artist.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if name != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllArtists, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count artists")

		return res, fmt.Errorf("failed to count artists: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get artists")

		return res, fmt.Errorf("failed to get artists: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save artists to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ArtistResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".artist.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	artist, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get artist")

		return res, fmt.Errorf("failed to get artist: %w", err)
	}

	if artist.ID == constant.Empty {
		return res, failure.NotFound("artist not found") //nolint:wrapcheck
	}

	res.FromModel(artist)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateArtistRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".artist.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, filterByName(req.Name))
	if err != nil {
		log.Error().Err(err).Msg("failed to check artist existence")

		return constant.Empty, fmt.Errorf("failed to check artist existence: %w", err)
	}

	if exist {
		return constant.Empty, failure.Conflict("artist already exists") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	mod := req.ToModel(user)

	if err = s.repo.Insert(ctx, mod); err != nil {
		return constant.Empty, err
	}

	s.invalidate(ctx)

	return mod.ID, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateArtistRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".artist.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check artist existence")

		return fmt.Errorf("failed to check artist existence: %w", err)
	}

	if !exist {
		return failure.NotFound("artist not found") //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update artist")

		return fmt.Errorf("failed to update artist: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".artist.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check artist existence")

		return fmt.Errorf("failed to check artist existence: %w", err)
	}

	if !exist {
		return failure.NotFound("artist not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete artist")

		return fmt.Errorf("failed to delete artist: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllArtists)
	}()
}

func filterByName(name string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorEq,
				Value:    name,
				Table:    model.TableName,
			},
		},
	}
}
