package venue

import (
	"encoding/json"
	"net/http"

	"arthive/config"
	"arthive/infras/otel"
	"arthive/internal/domains/venue/model/dto"
	"arthive/internal/domains/venue/service"
	"arthive/shared/constant"
	gDto "arthive/shared/dto"
	"arthive/shared/failure"
	"arthive/shared/validator"
	"arthive/transport/http/middleware"
	"arthive/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

// venueSortTokens maps the public sort vocabulary onto venue columns.
var venueSortTokens = map[string]string{
	"name":      "name",
	"city":      "city",
	"addedDate": constant.FieldCreatedAt,
}

type Handler struct {
	service service.Venue
	authMw  middleware.AuthRole
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Venue, authMw middleware.AuthRole, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		authMw:  authMw,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/venues", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetVenues)
		routerGroup.Get("/{id}", handler.GetVenueByID)
		routerGroup.Get("/{id}/exhibitions", handler.GetVenueExhibitions)
	})

	router.Route("/admin/venues", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authMw.Auth)
		routerGroup.Use(handler.authMw.RequireRole(constant.RoleAdmin))

		routerGroup.Post("/", handler.CreateVenue)
		routerGroup.Patch("/{id}", handler.UpdateVenue)
		routerGroup.Delete("/{id}", handler.DeleteVenue)
	})
}

// GetVenues lists active venues.
// @Summary Get venues
// @Tags Venue
// @Produce json
// @Param city query string false "Filter by city"
// @Param sort query string false "Sort token"
// @Param limit query integer false "Page size"
// @Param skip query integer false "Offset"
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/venues [get]
func (handler *Handler) GetVenues(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenues")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, handler.cfg.App.Search.DefaultLimit)
	queryParams.ApplySort(r.URL.Query().Get(constant.RequestParamSort), venueSortTokens, "name")

	res, err := handler.service.GetAll(ctx, queryParams, r.URL.Query().Get(constant.RequestParamCity))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get venues")

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

// GetVenueByID retrieves a venue.
// @Summary Get a venue by ID
// @Tags Venue
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/venues/{id} [get]
func (handler *Handler) GetVenueByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenueByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get venue by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetVenueExhibitions lists the active exhibitions at a venue.
// @Summary Get a venue's exhibitions
// @Tags Venue
// @Produce json
// @Param id path string true "Venue ID"
// @Param limit query integer false "Page size"
// @Param skip query integer false "Offset"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/venues/{id}/exhibitions [get]
func (handler *Handler) GetVenueExhibitions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenueExhibitions")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, handler.cfg.App.Search.DefaultLimit)
	queryParams.ApplySort(r.URL.Query().Get(constant.RequestParamSort), map[string]string{
		"startDate": "start_date",
		"title":     "title",
		"addedDate": constant.FieldCreatedAt,
	}, "startDate")

	res, err := handler.service.GetExhibitions(ctx, id, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get venue exhibitions")

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

// CreateVenue creates a venue.
// @Summary Create a venue
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateVenueRequest true "Venue"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/admin/venues [post]
// @Security BearerAuth
func (handler *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVenue")
	defer scope.End()

	var req dto.CreateVenueRequest

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
		log.Error().Err(err).Msg("failed to create venue")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Venue created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// UpdateVenue updates a venue.
// @Summary Update a venue
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body dto.UpdateVenueRequest true "Changed fields"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/admin/venues/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateVenue")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateVenueRequest

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
		log.Error().Err(err).Msg("failed to update venue")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Venue updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Venue updated successfully")
}

// DeleteVenue deactivates a venue.
// @Summary Delete a venue
// @Description Soft delete; the venue disappears from public listings.
// @Tags Admin
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/admin/venues/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteVenue")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete venue")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Venue deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Venue deleted successfully")
}
