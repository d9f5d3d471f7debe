package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"arthive/config"
	"arthive/infras/otel"
	exhibitionModel "arthive/internal/domains/exhibition/model"
	exhibitionDto "arthive/internal/domains/exhibition/model/dto"
	exhibitionRepository "arthive/internal/domains/exhibition/repository"
	"arthive/internal/domains/venue/model"
	"arthive/internal/domains/venue/model/dto"
	"arthive/internal/domains/venue/repository"
	"arthive/shared"
	"arthive/shared/cache"
	"arthive/shared/constant"
	gDto "arthive/shared/dto"
	"arthive/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetVenue     = "venue:get"
	cacheGetAllVenues = "venue:gets"
)

type Venue interface {
	GetAll(ctx context.Context, params gDto.QueryParams, city string) (dto.GetVenuesResponse, error)
	Get(ctx context.Context, id string) (dto.VenueResponse, error)
	GetExhibitions(ctx context.Context, id string, params gDto.QueryParams) (exhibitionDto.SearchExhibitionsResponse, error)
	Create(ctx context.Context, req dto.CreateVenueRequest) (string, error)
	Update(ctx context.Context, req dto.UpdateVenueRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo           repository.Venue
	exhibitionRepo exhibitionRepository.Exhibition
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(repo repository.Venue, exhibitionRepo exhibitionRepository.Exhibition, cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel) Venue {
	return &serviceImpl{
		repo:           repo,
		exhibitionRepo: exhibitionRepo,
		cfg:            cfg,
		cache:          redisCache,
		otel:           otl,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, city string) (res dto.GetVenuesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	if city != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldCity,
			Operator: gDto.FilterOperatorLike,
			Value:    city,
			Table:    model.TableName,
		})
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllVenues, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for venues")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count venues")

		return res, fmt.Errorf("failed to count venues: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get venues")

		return res, fmt.Errorf("failed to get venues: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save venues to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.VenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetVenue, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for venue")

		return res, nil
	}

	venue, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get venue")

		return res, fmt.Errorf("failed to get venue: %w", err)
	}

	if venue.ID == constant.Empty {
		return res, failure.NotFound("venue not found") //nolint:wrapcheck
	}

	res.FromModel(venue)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save venue to cache")
		}
	}()

	return res, nil
}

// GetExhibitions lists the active exhibitions held at a venue.
func (s *serviceImpl) GetExhibitions(ctx context.Context, id string, params gDto.QueryParams) (res exhibitionDto.SearchExhibitionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.GetExhibitions")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check venue existence")

		return res, fmt.Errorf("failed to check venue existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("venue not found") //nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    exhibitionModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    exhibitionModel.TableName,
			},
			gDto.Filter{
				Field:    exhibitionModel.FieldVenueID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    exhibitionModel.TableName,
			},
		},
	}

	total, err := s.exhibitionRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count venue exhibitions")

		return res, fmt.Errorf("failed to count venue exhibitions: %w", err)
	}

	models, err := s.exhibitionRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get venue exhibitions")

		return res, fmt.Errorf("failed to get venue exhibitions: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVenueRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	mod := req.ToModel(user)

	if err = s.repo.Insert(ctx, mod); err != nil {
		return constant.Empty, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllVenues)
	}()

	return mod.ID, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateVenueRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check venue existence")

		return fmt.Errorf("failed to check venue existence: %w", err)
	}

	if !exist {
		return failure.NotFound("venue not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if value, ok := updatedFields[model.FieldClosedDays].([]string); ok {
		updatedFields[model.FieldClosedDays] = pq.StringArray(value)
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update venue")

		return fmt.Errorf("failed to update venue: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete soft-deletes the venue by flipping its active flag; exhibitions keep
// their venue reference.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check venue existence")

		return fmt.Errorf("failed to check venue existence: %w", err)
	}

	if !exist {
		return failure.NotFound("venue not found") //nolint:wrapcheck
	}

	inactive := false
	updatedFields := shared.TransformFields(dto.UpdateVenueRequest{Active: &inactive}, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to deactivate venue")

		return fmt.Errorf("failed to deactivate venue: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVenue, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete venue cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllVenues)
	}()
}
