package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/base64"
	"fmt"
	"sort"
	"time"

	"arthive/config"
	"arthive/infras/otel"
	"arthive/infras/s3"
	"arthive/internal/domains/exhibition/model"
	"arthive/internal/domains/exhibition/model/dto"
	"arthive/internal/domains/exhibition/repository"
	userModel "arthive/internal/domains/user/model"
	userRepository "arthive/internal/domains/user/repository"
	"arthive/shared"
	sharedBase64 "arthive/shared/base64"
	"arthive/shared/cache"
	"arthive/shared/constant"
	gDto "arthive/shared/dto"
	"arthive/shared/failure"
	"arthive/shared/geo"
	"arthive/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetExhibition     = "exhibition:get"
	cacheGetAllExhibitions = "exhibition:gets"
	cacheCountExhibitions  = "exhibition:count"
	cacheFilterOptions     = "exhibition:filter_options"

	scoreTagWeight    = 2
	scoreArtistWeight = 1
	scoreCityWeight   = 1
)

// sortTokens maps the public sort vocabulary onto whitelisted columns.
var sortTokens = map[string]string{
	"startDate":  model.FieldStartDate,
	"popularity": model.FieldPopularity,
	"title":      model.FieldTitle,
	"addedDate":  constant.FieldCreatedAt,
}

type Exhibition interface {
	Search(ctx context.Context, req dto.SearchExhibitionsRequest, params gDto.QueryParams) (dto.SearchExhibitionsResponse, error)
	GetByDate(ctx context.Context, req dto.SearchExhibitionsRequest, params gDto.QueryParams) (dto.SearchExhibitionsResponse, error)
	Nearby(ctx context.Context, lat, lng, radiusKm float64) (dto.NearbyExhibitionsResponse, error)
	Recommendations(ctx context.Context, userID string, limit int) (dto.RecommendationsResponse, error)
	Featured(ctx context.Context, params gDto.QueryParams) (dto.SearchExhibitionsResponse, error)
	Get(ctx context.Context, id string) (dto.ExhibitionResponse, error)
	FilterOptions(ctx context.Context) (dto.FilterOptions, error)
	Create(ctx context.Context, req dto.CreateExhibitionRequest) (string, error)
	Update(ctx context.Context, req dto.UpdateExhibitionRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Exhibition
	userRepo userRepository.User
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3
}

func New(repo repository.Exhibition, userRepo userRepository.User, cfg *config.Config, redisCache cache.RedisCache, otl otel.Otel, s3Client s3.S3) Exhibition {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		cfg:      cfg,
		cache:    redisCache,
		otel:     otl,
		s3:       s3Client,
	}
}

func (s *serviceImpl) Search(ctx context.Context, req dto.SearchExhibitionsRequest, params gDto.QueryParams) (res dto.SearchExhibitionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".exhibition.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := req.ToFilterGroup()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count exhibitions")

		return res, fmt.Errorf("failed to count exhibitions: %w", err)
	}

	var models []model.Exhibition

	if req.Search != "" {
		models, err = s.repo.GetAllRanked(ctx, params, filter, req.Search)
	} else {
		models, err = s.repo.GetAll(ctx, params, filter)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get exhibitions")

		return res, fmt.Errorf("failed to get exhibitions: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	options, err := s.FilterOptions(ctx)
	if err != nil {
		// search results are still useful without facets
		log.Error().Err(err).Msg("failed to get filter options")
	} else {
		res.FilterOptions = &options
	}

	return res, nil
}

// GetByDate narrows the search to exhibitions running on a single day. The
// handler sets both range bounds to the same date.
func (s *serviceImpl) GetByDate(ctx context.Context, req dto.SearchExhibitionsRequest, params gDto.QueryParams) (res dto.SearchExhibitionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".exhibition.GetByDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.StartDate == nil || req.EndDate == nil {
		return res, failure.BadRequestFromString("date is required") //nolint:wrapcheck
	}

	filter := req.ToFilterGroup()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count exhibitions by date")

		return res, fmt.Errorf("failed to count exhibitions by date: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get exhibitions by date")

		return res, fmt.Errorf("failed to get exhibitions by date: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

// Nearby scans active exhibitions with coordinates and keeps those within
// radiusKm of the given point, ascending by distance.
func (s *serviceImpl) Nearby(ctx context.Context, lat, lng, radiusKm float64) (res dto.NearbyExhibitionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".exhibition.Nearby")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !geo.ValidCoordinate(lat, lng) {
		return res, failure.BadRequestFromString("invalid coordinates") //nolint:wrapcheck
	}

	if radiusKm <= 0 {
		radiusKm = s.cfg.App.Search.NearbyRadiusKm
	}

	res.RadiusKm = radiusKm

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldLatitude,
				Operator: gDto.FilterIsNotNull,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldLongitude,
				Operator: gDto.FilterIsNotNull,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get exhibitions with coordinates")

		return res, fmt.Errorf("failed to get nearby exhibitions: %w", err)
	}

	type scored struct {
		mod      model.Exhibition
		distance float64
	}

	within := make([]scored, 0, len(models))

	for _, mod := range models {
		if !mod.HasCoordinates() {
			continue
		}

		distance := geo.Distance(lat, lng, mod.Latitude.Float64, mod.Longitude.Float64)
		if distance <= radiusKm {
			within = append(within, scored{mod: mod, distance: distance})
		}
	}

	sort.SliceStable(within, func(i, j int) bool {
		return within[i].distance < within[j].distance
	})

	limit := s.cfg.App.Search.NearbyLimit
	if limit > 0 && len(within) > limit {
		within = within[:limit]
	}

	res.Exhibitions = make([]dto.ExhibitionResponse, len(within))
	for i, entry := range within {
		res.Exhibitions[i].FromModel(entry.mod)

		rounded := geo.RoundKm(entry.distance)
		res.Exhibitions[i].DistanceKm = &rounded
	}

	res.TotalData = len(res.Exhibitions)

	return res, nil
}

// Recommendations scores upcoming-or-running exhibitions against the user's
// preferences; without preferences the most popular ones are returned.
func (s *serviceImpl) Recommendations(ctx context.Context, userID string, limit int) (res dto.RecommendationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".exhibition.Recommendations")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user for recommendations")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	if limit <= 0 {
		limit = s.cfg.App.Search.RecommendationLimit
	}

	// end_date is a DATE column with inclusive semantics: an exhibition
	// stays eligible through its whole final day.
	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEndDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    today,
				Table:    model.TableName,
				ArgName:  "eligible_from",
			},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get eligible exhibitions")

		return res, fmt.Errorf("failed to get recommendations: %w", err)
	}

	res.HasPreferences = user.HasPreferences()

	if res.HasPreferences {
		sortByPreferenceScore(models, user)
	} else {
		sort.SliceStable(models, func(i, j int) bool {
			if models[i].Popularity != models[j].Popularity {
				return models[i].Popularity > models[j].Popularity
			}

			return models[i].StartDate.Before(models[j].StartDate)
		})
	}

	if len(models) > limit {
		models = models[:limit]
	}

	res.Exhibitions = make([]dto.ExhibitionResponse, len(models))
	for i, mod := range models {
		res.Exhibitions[i].FromModel(mod)
	}

	return res, nil
}

// PreferenceScore weighs an exhibition against user preferences: matched tags
// count double, matched artists single, and a preferred city adds one.
func PreferenceScore(mod model.Exhibition, user userModel.User) int {
	score := scoreTagWeight * countIntersection(mod.Tags, user.PreferredTags)
	score += scoreArtistWeight * countIntersection(mod.Artists, user.PreferredArtists)

	for _, location := range user.PreferredLocations {
		if mod.City != "" && mod.City == location {
			score += scoreCityWeight

			break
		}
	}

	return score
}

func sortByPreferenceScore(models []model.Exhibition, user userModel.User) {
	scores := make(map[string]int, len(models))
	for _, mod := range models {
		scores[mod.ID] = PreferenceScore(mod, user)
	}

	sort.SliceStable(models, func(i, j int) bool {
		if scores[models[i].ID] != scores[models[j].ID] {
			return scores[models[i].ID] > scores[models[j].ID]
		}

		return models[i].StartDate.Before(models[j].StartDate)
	})
}

func countIntersection(left pq.StringArray, right pq.StringArray) int {
	if len(left) == 0 || len(right) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(right))
	for _, entry := range right {
		set[entry] = struct{}{}
	}

	count := 0

	for _, entry := range left {
		if _, ok := set[entry]; ok {
			delete(set, entry)

			count++
		}
	}

	return count
}

func (s *serviceImpl) Featured(ctx context.Context, params gDto.QueryParams) (res dto.SearchExhibitionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".exhibition.Featured")
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
			gDto.Filter{
				Field:    model.FieldFeatured,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count featured exhibitions")

		return res, fmt.Errorf("failed to count featured exhibitions: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get featured exhibitions")

		return res, fmt.Errorf("failed to get featured exhibitions: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ExhibitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".exhibition.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetExhibition, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for exhibition")

		return res, nil
	}

	exhibition, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get exhibition")

		return res, fmt.Errorf("failed to get exhibition: %w", err)
	}

	if exhibition.ID == constant.Empty {
		return res, failure.NotFound("exhibition not found") //nolint:wrapcheck
	}

	res.FromModel(exhibition)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.repo.IncrementPopularity(c, id); err != nil {
			log.Error().Err(err).Msg("failed to increment exhibition popularity")
		}

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save exhibition to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) FilterOptions(ctx context.Context) (res dto.FilterOptions, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".exhibition.FilterOptions")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheFilterOptions, &res)
	if err == nil {
		return res, nil
	}

	cities, countries, categories, err := s.repo.FilterOptions(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to get filter options: %w", err)
	}

	res = dto.FilterOptions{
		Cities:     cities,
		Countries:  countries,
		Categories: categories,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheFilterOptions, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save filter options to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateExhibitionRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".exhibition.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return constant.Empty, err
	}

	coverImageURL, uploadedObjectName, err := s.uploadCoverImage(ctx, req.CoverImage)
	if err != nil {
		return constant.Empty, err
	}

	mod := req.ToModel(user, coverImageURL, startDate, endDate)

	if err = s.repo.Insert(ctx, mod); err != nil {
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, uploadedObjectName)
		}

		return constant.Empty, err
	}

	s.invalidateListCaches(ctx)

	return mod.ID, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateExhibitionRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".exhibition.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check exhibition existence")

		return err
	}

	if current.ID == constant.Empty {
		return failure.NotFound("exhibition not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if err = applyDateFields(updatedFields, req, current); err != nil {
		return err
	}

	for _, field := range []string{model.FieldImages, model.FieldCategories, model.FieldArtists, model.FieldTags} {
		if value, ok := updatedFields[field].([]string); ok {
			updatedFields[field] = pq.StringArray(value)
		}
	}

	coverImageURL, uploadedObjectName, err := s.uploadCoverImage(ctx, req.CoverImage)
	if err != nil {
		return err
	}

	if coverImageURL != constant.Empty {
		updatedFields[model.FieldCoverImage] = coverImageURL
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update exhibition")

		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, uploadedObjectName)
		}

		return fmt.Errorf("failed to update exhibition: %w", err)
	}

	if coverImageURL != constant.Empty && current.CoverImage != constant.Empty {
		bucketName := s.cfg.External.S3.BucketName

		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, current.CoverImage)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	s.invalidateItemCaches(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".exhibition.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if exhibition exists")

		return fmt.Errorf("failed to check if exhibition exists: %w", err)
	}

	if !exist {
		return failure.NotFound("exhibition not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete exhibition")

		return fmt.Errorf("failed to delete exhibition: %w", err)
	}

	s.invalidateItemCaches(ctx, id)

	return nil
}

// ApplySearchSort resolves the public sort token for exhibition listings.
func ApplySearchSort(params *gDto.QueryParams, token string) {
	params.ApplySort(token, sortTokens, constant.DefaultValueSort)
}

func parseDateRange(start, end string) (startDate, endDate time.Time, err error) {
	startDate, err = timezone.Parse(constant.DateOnlyFormat, start)
	if err != nil {
		return startDate, endDate, failure.BadRequestFromString("invalid start_date, expected YYYY-MM-DD") //nolint:wrapcheck
	}

	endDate, err = timezone.Parse(constant.DateOnlyFormat, end)
	if err != nil {
		return startDate, endDate, failure.BadRequestFromString("invalid end_date, expected YYYY-MM-DD") //nolint:wrapcheck
	}

	if endDate.Before(startDate) {
		return startDate, endDate, failure.BadRequestFromString("end_date must not be before start_date") //nolint:wrapcheck
	}

	return startDate, endDate, nil
}

// applyDateFields replaces the string date fields of an update request with
// parsed values, validating the range against the stored row.
func applyDateFields(updatedFields map[string]any, req dto.UpdateExhibitionRequest, current model.Exhibition) error {
	if req.StartDate == constant.Empty && req.EndDate == constant.Empty {
		return nil
	}

	start := req.StartDate
	if start == constant.Empty {
		start = current.StartDate.Format(constant.DateOnlyFormat)
	}

	end := req.EndDate
	if end == constant.Empty {
		end = current.EndDate.Format(constant.DateOnlyFormat)
	}

	startDate, endDate, err := parseDateRange(start, end)
	if err != nil {
		return err
	}

	if req.StartDate != constant.Empty {
		updatedFields[model.FieldStartDate] = startDate
	}

	if req.EndDate != constant.Empty {
		updatedFields[model.FieldEndDate] = endDate
	}

	return nil
}

func (s *serviceImpl) uploadCoverImage(ctx context.Context, coverImage string) (url, objectName string, err error) {
	if coverImage == constant.Empty || !sharedBase64.IsDataURI(coverImage) {
		// plain URLs pass through untouched
		return coverImage, constant.Empty, nil
	}

	contentType := sharedBase64.GetContentType(coverImage)
	if contentType == constant.Empty {
		return constant.Empty, constant.Empty, failure.BadRequestFromString("invalid cover image encoding") //nolint:wrapcheck
	}

	raw, err := base64.StdEncoding.DecodeString(sharedBase64.StripPrefix(coverImage))
	if err != nil {
		return constant.Empty, constant.Empty, failure.BadRequestFromString("invalid cover image encoding") //nolint:wrapcheck
	}

	objectName = uuid.NewString()

	url, err = s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, model.EntityName, objectName, contentType, raw)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload cover image")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to upload cover image: %w", err)
	}

	return url, objectName, nil
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllExhibitions)
		shared.InvalidateCaches(c, s.cache, cacheCountExhibitions)
		shared.InvalidateCaches(c, s.cache, cacheFilterOptions)
	}()
}

func (s *serviceImpl) invalidateItemCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetExhibition, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete exhibition cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllExhibitions)
		shared.InvalidateCaches(c, s.cache, cacheCountExhibitions)
		shared.InvalidateCaches(c, s.cache, cacheFilterOptions)
	}()
}
