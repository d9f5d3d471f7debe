package exhibition

import (
	"encoding/json"
	"net/http"
	"time"

	"arthive/config"
	"arthive/infras/otel"
	"arthive/internal/domains/exhibition/model/dto"
	"arthive/internal/domains/exhibition/service"
	"arthive/shared"
	"arthive/shared/constant"
	gDto "arthive/shared/dto"
	"arthive/shared/failure"
	"arthive/shared/timezone"
	"arthive/shared/validator"
	"arthive/transport/http/middleware"
	"arthive/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Exhibition
	authMw  middleware.AuthRole
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Exhibition, authMw middleware.AuthRole, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		authMw:  authMw,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/exhibitions", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Search)
		routerGroup.Get("/by-date", handler.GetByDate)
		routerGroup.Get("/nearby", handler.Nearby)
		routerGroup.Get("/featured", handler.Featured)
		routerGroup.Get("/filter-options", handler.FilterOptions)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.authMw.Auth)
			protected.Get("/recommendations", handler.Recommendations)
		})

		routerGroup.Get("/{id}", handler.GetByID)
	})

	router.Route("/admin/exhibitions", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authMw.Auth)
		routerGroup.Use(handler.authMw.RequireRole(constant.RoleAdmin))

		routerGroup.Post("/", handler.Create)
		routerGroup.Patch("/{id}", handler.Update)
		routerGroup.Delete("/{id}", handler.Delete)
	})
}

// Search retrieves exhibitions matching the query parameters.
// @Summary Search exhibitions
// @Description Search active exhibitions with optional filters, full-text search, sorting and pagination.
// @Tags Exhibition
// @Produce json
// @Param search query string false "Full-text search"
// @Param city query string false "Filter by city"
// @Param country query string false "Filter by country"
// @Param category query string false "Filter by category"
// @Param artist query string false "Filter by artist"
// @Param startDate query string false "Range start (YYYY-MM-DD)"
// @Param endDate query string false "Range end (YYYY-MM-DD)"
// @Param sort query string false "Sort token, '-' prefix for descending"
// @Param limit query integer false "Page size"
// @Param skip query integer false "Offset"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/exhibitions [get]
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchExhibitions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, handler.cfg.App.Search.DefaultLimit)
	service.ApplySearchSort(&queryParams, r.URL.Query().Get(constant.RequestParamSort))

	req, err := searchRequestFromQuery(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Search(ctx, req, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search exhibitions")

		response.WithError(w, err)

		return
	}

	response.WithPagination(w, http.StatusOK, res, response.Meta{
		Total:     res.TotalData,
		Limit:     queryParams.Limit,
		Skip:      queryParams.Skip,
		TotalPage: res.TotalPage,
	})
}

// GetByDate retrieves exhibitions running on a single day.
// @Summary Get exhibitions by date
// @Description Retrieve exhibitions whose date range covers the given day.
// @Tags Exhibition
// @Produce json
// @Param date query string true "Day (YYYY-MM-DD)"
// @Param city query string false "Filter by city"
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/exhibitions/by-date [get]
func (handler *Handler) GetByDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExhibitionsByDate")
	defer scope.End()

	dateStr := r.URL.Query().Get(constant.RequestParamDate)
	if dateStr == "" {
		err := failure.BadRequestFromString("date is required")
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	date, err := timezone.Parse(constant.DateOnlyFormat, dateStr)
	if err != nil {
		err := failure.BadRequestFromString("invalid date, expected YYYY-MM-DD")
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, handler.cfg.App.Search.DefaultLimit)
	service.ApplySearchSort(&queryParams, r.URL.Query().Get(constant.RequestParamSort))

	req := dto.SearchExhibitionsRequest{
		City:      r.URL.Query().Get(constant.RequestParamCity),
		Category:  r.URL.Query().Get(constant.RequestParamCat),
		StartDate: &date,
		EndDate:   &date,
	}

	res, err := handler.service.GetByDate(ctx, req, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get exhibitions by date")

		response.WithError(w, err)

		return
	}

	response.WithPagination(w, http.StatusOK, res, response.Meta{
		Total:     res.TotalData,
		Limit:     queryParams.Limit,
		Skip:      queryParams.Skip,
		TotalPage: res.TotalPage,
		Date:      dateStr,
	})
}

// Nearby retrieves exhibitions within a radius of the given point.
// @Summary Get nearby exhibitions
// @Description Retrieve active exhibitions within radius km of the given coordinates, closest first.
// @Tags Exhibition
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in km"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/exhibitions/nearby [get]
func (handler *Handler) Nearby(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNearbyExhibitions")
	defer scope.End()

	query := r.URL.Query()

	lat, err := shared.ConvertStringToFloat(query.Get(constant.RequestParamLat))
	if err != nil {
		err := failure.BadRequestFromString("lat must be a number")
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	lng, err := shared.ConvertStringToFloat(query.Get(constant.RequestParamLng))
	if err != nil {
		err := failure.BadRequestFromString("lng must be a number")
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	radius := 0.0

	if radiusStr := query.Get(constant.RequestParamRadius); radiusStr != "" {
		radius, err = shared.ConvertStringToFloat(radiusStr)
		if err != nil || radius <= 0 {
			err := failure.BadRequestFromString("radius must be a positive number")
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}
	}

	res, err := handler.service.Nearby(ctx, lat, lng, radius)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get nearby exhibitions")

		response.WithError(w, err)

		return
	}

	response.WithPagination(w, http.StatusOK, res, response.Meta{
		Total:        res.TotalData,
		Limit:        handler.cfg.App.Search.NearbyLimit,
		UserLocation: &response.Point{Lat: lat, Lng: lng},
		Radius:       res.RadiusKm,
	})
}

// Recommendations retrieves personalized exhibition recommendations.
// @Summary Get recommendations
// @Description Retrieve exhibitions scored against the authenticated user's preferences.
// @Tags Exhibition
// @Produce json
// @Param limit query integer false "Result count"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/exhibitions/recommendations [get]
// @Security BearerAuth
func (handler *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecommendations")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	limit := 0

	if limitStr := r.URL.Query().Get(constant.RequestParamLimit); limitStr != "" {
		parsed, err := shared.ConvertStringToInt(limitStr)
		if err != nil || parsed <= 0 {
			err := failure.BadRequestFromString("limit must be a positive integer")
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		limit = parsed
	}

	res, err := handler.service.Recommendations(ctx, userID, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recommendations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Featured retrieves featured exhibitions.
// @Summary Get featured exhibitions
// @Tags Exhibition
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/exhibitions/featured [get]
func (handler *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeaturedExhibitions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, handler.cfg.App.Search.DefaultLimit)
	service.ApplySearchSort(&queryParams, r.URL.Query().Get(constant.RequestParamSort))

	res, err := handler.service.Featured(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured exhibitions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// FilterOptions retrieves the searchable facets.
// @Summary Get filter options
// @Description Distinct cities, countries, and categories of active exhibitions.
// @Tags Exhibition
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/exhibitions/filter-options [get]
func (handler *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFilterOptions")
	defer scope.End()

	res, err := handler.service.FilterOptions(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get filter options")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetByID retrieves a single exhibition with its venue.
// @Summary Get an exhibition by ID
// @Tags Exhibition
// @Produce json
// @Param id path string true "Exhibition ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/exhibitions/{id} [get]
func (handler *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExhibitionByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get exhibition by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Create creates a new exhibition.
// @Summary Create an exhibition
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateExhibitionRequest true "Exhibition"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/admin/exhibitions [post]
// @Security BearerAuth
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateExhibition")
	defer scope.End()

	var req dto.CreateExhibitionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		err := failure.BadRequestFromString("invalid request body")
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create exhibition")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Exhibition created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Update updates an existing exhibition.
// @Summary Update an exhibition
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Exhibition ID"
// @Param request body dto.UpdateExhibitionRequest true "Changed fields"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/admin/exhibitions/{id} [patch]
// @Security BearerAuth
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateExhibition")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateExhibitionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		err := failure.BadRequestFromString("invalid request body")
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update exhibition")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Exhibition updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Exhibition updated successfully")
}

// Delete deletes an exhibition.
// @Summary Delete an exhibition
// @Tags Admin
// @Produce json
// @Param id path string true "Exhibition ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/admin/exhibitions/{id} [delete]
// @Security BearerAuth
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteExhibition")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete exhibition")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Exhibition deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Exhibition deleted successfully")
}

// searchRequestFromQuery parses the public search parameters, rejecting
// malformed dates.
func searchRequestFromQuery(r *http.Request) (dto.SearchExhibitionsRequest, error) {
	query := r.URL.Query()

	req := dto.SearchExhibitionsRequest{
		City:     query.Get(constant.RequestParamCity),
		Country:  query.Get(constant.RequestParamCountry),
		Category: query.Get(constant.RequestParamCat),
		Artist:   query.Get(constant.RequestParamArtist),
		Search:   query.Get(constant.RequestParamSearch),
	}

	var err error

	req.StartDate, err = parseOptionalDate(query.Get(constant.RequestParamStart))
	if err != nil {
		return req, failure.BadRequestFromString("invalid startDate, expected YYYY-MM-DD") //nolint:wrapcheck
	}

	req.EndDate, err = parseOptionalDate(query.Get(constant.RequestParamEnd))
	if err != nil {
		return req, failure.BadRequestFromString("invalid endDate, expected YYYY-MM-DD") //nolint:wrapcheck
	}

	return req, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	parsed, err := timezone.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &parsed, nil
}
