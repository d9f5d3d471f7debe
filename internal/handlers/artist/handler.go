package artist

import (
	"encoding/json"
	"net/http"

	"arthive/config"
	"arthive/infras/otel"
	"arthive/internal/domains/artist/model/dto"
	"arthive/internal/domains/artist/service"
	"arthive/shared/constant"
	gDto "arthive/shared/dto"
	"arthive/shared/failure"
	"arthive/shared/validator"
	"arthive/transport/http/middleware"
	"arthive/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

var artistSortTokens = map[string]string{
	"name":      "name",
	"addedDate": constant.FieldCreatedAt,
}

type Handler struct {
	service service.Artist
	authMw  middleware.AuthRole
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Artist, authMw middleware.AuthRole, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		authMw:  authMw,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/artists", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetArtists)
		routerGroup.Get("/{id}", handler.GetArtistByID)
	})

	router.Route("/admin/artists", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authMw.Auth)
		routerGroup.Use(handler.authMw.RequireRole(constant.RoleAdmin))

		routerGroup.Post("/", handler.CreateArtist)
		routerGroup.Patch("/{id}", handler.UpdateArtist)
		routerGroup.Delete("/{id}", handler.DeleteArtist)
	})
}

// GetArtists lists artists.
// @Summary Get artists
// @Tags Artist
// @Produce json
// @Param search query string false "Filter by name"
// @Param limit query integer false "Page size"
// @Param skip query integer false "Offset"
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/artists [get]
func (handler *Handler) GetArtists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArtists")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, handler.cfg.App.Search.DefaultLimit)
	queryParams.ApplySort(r.URL.Query().Get(constant.RequestParamSort), artistSortTokens, "name")

	res, err := handler.service.GetAll(ctx, queryParams, r.URL.Query().Get(constant.RequestParamSearch))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get artists")

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

// GetArtistByID retrieves an artist.
// @Summary Get an artist by ID
// @Tags Artist
// @Produce json
// @Param id path string true "Artist ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/artists/{id} [get]
func (handler *Handler) GetArtistByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArtistByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get artist by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateArtist creates an artist.
// @Summary Create an artist
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateArtistRequest true "Artist"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /v1/admin/artists [post]
// @Security BearerAuth
func (handler *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateArtist")
	defer scope.End()

	var req dto.CreateArtistRequest

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
		log.Error().Err(err).Msg("failed to create artist")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// UpdateArtist updates an artist.
// @Summary Update an artist
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Artist ID"
// @Param request body dto.UpdateArtistRequest true "Changed fields"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/admin/artists/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateArtist")
	defer scope.End()

	var req dto.UpdateArtistRequest

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

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update artist")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Artist updated successfully")
}

// DeleteArtist deletes an artist.
// @Summary Delete an artist
// @Tags Admin
// @Produce json
// @Param id path string true "Artist ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/admin/artists/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteArtist")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete artist")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Artist deleted successfully")
}
