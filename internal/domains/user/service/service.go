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
	"arthive/internal/domains/user/model"
	"arthive/internal/domains/user/model/dto"
	"arthive/internal/domains/user/repository"
	"arthive/shared"
	"arthive/shared/cache"
	"arthive/shared/constant"
	gDto "arthive/shared/dto"
	"arthive/shared/failure"
	"arthive/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const cacheGetUser = "user:get"

type User interface {
	GetProfile(ctx context.Context, userID string) (dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, userID string) error
	UpdatePreferences(ctx context.Context, req dto.UpdatePreferencesRequest, userID string) error
	GetFavorites(ctx context.Context, userID string) ([]exhibitionDto.ExhibitionResponse, error)
	AddFavorite(ctx context.Context, userID, exhibitionID string) error
	RemoveFavorite(ctx context.Context, userID, exhibitionID string) error
}

type serviceImpl struct {
	repo           repository.User
	exhibitionRepo exhibitionRepository.Exhibition
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(repo repository.User, exhibitionRepo exhibitionRepository.Exhibition, cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel) User {
	return &serviceImpl{
		repo:           repo,
		exhibitionRepo: exhibitionRepo,
		cfg:            cfg,
		cache:          redisCache,
		otel:           otl,
	}
}

func (s *serviceImpl) GetProfile(ctx context.Context, userID string) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetUser, userID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for user profile")

		return res, nil
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user profile to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.UpdateProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getUser(ctx, userID); err != nil {
		return err
	}

	mod := shared.TransformFields(req, userID)

	if err = s.repo.Update(ctx, mod, shared.FilterByID(userID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update user profile")

		return fmt.Errorf("failed to update user profile: %w", err)
	}

	s.invalidateProfileCache(ctx, userID)

	return nil
}

// UpdatePreferences replaces all three preference dimensions at once, so an
// omitted or empty array clears that dimension rather than leaving it as-is.
func (s *serviceImpl) UpdatePreferences(ctx context.Context, req dto.UpdatePreferencesRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.UpdatePreferences")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getUser(ctx, userID); err != nil {
		return err
	}

	req.Normalize()

	mod := map[string]any{
		model.FieldPreferredTags:      pq.StringArray(req.PreferredTags),
		model.FieldPreferredArtists:   pq.StringArray(req.PreferredArtists),
		model.FieldPreferredLocations: pq.StringArray(req.PreferredLocations),
		constant.FieldModifiedAt:      timezone.Now(),
		constant.FieldModifiedBy:      userID,
	}

	if err = s.repo.Update(ctx, mod, shared.FilterByID(userID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update user preferences")

		return fmt.Errorf("failed to update user preferences: %w", err)
	}

	s.invalidateProfileCache(ctx, userID)

	return nil
}

func (s *serviceImpl) GetFavorites(ctx context.Context, userID string) (res []exhibitionDto.ExhibitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetFavorites")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return res, err
	}

	res = []exhibitionDto.ExhibitionResponse{}

	if len(user.FavoriteExhibitions) == 0 {
		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    exhibitionModel.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    []string(user.FavoriteExhibitions),
				Table:    exhibitionModel.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  exhibitionModel.FieldStartDate,
		SortDir: gDto.SortDirAsc,
	}

	exhibitions, err := s.exhibitionRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get favorite exhibitions")

		return res, fmt.Errorf("failed to get favorite exhibitions: %w", err)
	}

	for _, mod := range exhibitions {
		item := exhibitionDto.ExhibitionResponse{}
		item.FromModel(mod)

		res = append(res, item)
	}

	return res, nil
}

func (s *serviceImpl) AddFavorite(ctx context.Context, userID, exhibitionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.AddFavorite")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getUser(ctx, userID); err != nil {
		return err
	}

	exists, err := s.exhibitionRepo.Exist(ctx, shared.FilterByID(exhibitionID, exhibitionModel.FieldID, exhibitionModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check exhibition existence")

		return fmt.Errorf("failed to check exhibition existence: %w", err)
	}

	if !exists {
		return failure.NotFound("exhibition not found") //nolint:wrapcheck
	}

	if err = s.repo.AddFavorite(ctx, userID, exhibitionID); err != nil {
		log.Error().Err(err).Msg("failed to add favorite")

		return err
	}

	s.invalidateProfileCache(ctx, userID)

	return nil
}

func (s *serviceImpl) RemoveFavorite(ctx context.Context, userID, exhibitionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.RemoveFavorite")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getUser(ctx, userID); err != nil {
		return err
	}

	if err = s.repo.RemoveFavorite(ctx, userID, exhibitionID); err != nil {
		log.Error().Err(err).Msg("failed to remove favorite")

		return err
	}

	s.invalidateProfileCache(ctx, userID)

	return nil
}

func (s *serviceImpl) getUser(ctx context.Context, userID string) (model.User, error) {
	user, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return user, failure.NotFound("user not found") //nolint:wrapcheck
	}

	return user, nil
}

func (s *serviceImpl) invalidateProfileCache(ctx context.Context, userID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetUser, userID)); err != nil {
			log.Error().Err(err).Msg("failed to invalidate user profile cache")
		}
	}()
}
