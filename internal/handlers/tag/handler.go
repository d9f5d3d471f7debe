package tag

import (
	"encoding/json"
	"net/http"

	"arthive/infras/otel"
	"arthive/internal/domains/tag/model/dto"
	"arthive/internal/domains/tag/service"
	"arthive/shared/constant"
	"arthive/shared/failure"
	"arthive/shared/validator"
	"arthive/transport/http/middleware"
	"arthive/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Tag
	authMw  middleware.AuthRole
	otel    otel.Otel
}

func New(service service.Tag, authMw middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service: service,
		authMw:  authMw,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/tags", handler.GetTags)

	router.Route("/admin/tags", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authMw.Auth)
		routerGroup.Use(handler.authMw.RequireRole(constant.RoleAdmin))

		routerGroup.Post("/", handler.CreateTag)
		routerGroup.Patch("/{id}", handler.UpdateTag)
		routerGroup.Delete("/{id}", handler.DeleteTag)
	})
}

// GetTags lists all tags.
// @Summary Get tags
// @Tags Tag
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/tags [get]
func (handler *Handler) GetTags(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTags")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tags")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateTag creates a tag.
// @Summary Create a tag
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateTagRequest true "Tag"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /v1/admin/tags [post]
// @Security BearerAuth
func (handler *Handler) CreateTag(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTag")
	defer scope.End()

	var req dto.CreateTagRequest

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
		log.Error().Err(err).Msg("failed to create tag")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// UpdateTag renames a tag.
// @Summary Update a tag
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Tag ID"
// @Param request body dto.UpdateTagRequest true "Tag"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/admin/tags/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTag")
	defer scope.End()

	var req dto.UpdateTagRequest

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
		log.Error().Err(err).Msg("failed to update tag")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Tag updated successfully")
}

// DeleteTag deletes a tag.
// @Summary Delete a tag
// @Tags Admin
// @Produce json
// @Param id path string true "Tag ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/admin/tags/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTag")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete tag")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Tag deleted successfully")
}
