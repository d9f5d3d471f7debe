package user

import (
	"net/http"

	"arthive/infras/otel"
	"arthive/internal/domains/user/model/dto"
	"arthive/internal/domains/user/service"
	"arthive/shared/constant"
	"arthive/shared/validator"
	"arthive/transport/http/middleware"
	"arthive/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	authMw  middleware.AuthRole
	otel    otel.Otel
}

func New(service service.User, authMw middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service: service,
		authMw:  authMw,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/users/me", func(r chi.Router) {
		r.Use(handler.authMw.Auth)

		r.Get("/", handler.GetProfile)
		r.Patch("/", handler.UpdateProfile)
		r.Put("/preferences", handler.UpdatePreferences)
		r.Get("/favorites", handler.GetFavorites)
		r.Put("/favorites/{exhibitionID}", handler.AddFavorite)
		r.Delete("/favorites/{exhibitionID}", handler.RemoveFavorite)
	})
}

// GetProfile returns the authenticated user's profile.
// @Summary Get own profile
// @Tags User
// @Produce json
// @Success 200 {object} response.Envelope{data=dto.ProfileResponse}
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/users/me [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.GetProfile(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateProfile updates the authenticated user's profile fields.
// @Summary Update own profile
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} response.Envelope "Profile updated successfully"
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /v1/users/me [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	req := dto.UpdateProfileRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.UpdateProfile(ctx, req, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update user profile")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Profile updated successfully")
}

// UpdatePreferences replaces the user's recommendation preferences.
// @Summary Replace own preferences
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdatePreferencesRequest true "Preferences"
// @Success 200 {object} response.Envelope "Preferences updated successfully"
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /v1/users/me/preferences [put]
// @Security BearerAuth
func (handler *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePreferences")
	defer scope.End()

	req := dto.UpdatePreferencesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.UpdatePreferences(ctx, req, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update user preferences")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Preferences updated successfully")
}

// GetFavorites lists the user's favorite exhibitions, soonest first.
// @Summary List favorite exhibitions
// @Tags User
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /v1/users/me/favorites [get]
// @Security BearerAuth
func (handler *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFavorites")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.GetFavorites(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get favorites")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AddFavorite adds an exhibition to the user's favorites. Adding one that is
// already present is a no-op.
// @Summary Add a favorite exhibition
// @Tags User
// @Produce json
// @Param exhibitionID path string true "Exhibition ID"
// @Success 200 {object} response.Envelope "Favorite added successfully"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/users/me/favorites/{exhibitionID} [put]
// @Security BearerAuth
func (handler *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddFavorite")
	defer scope.End()

	exhibitionID := chi.URLParam(r, constant.RequestParamExhibitionID)

	if err := validator.ValidateVar(exhibitionID, "required,uuid"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid exhibition id")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.AddFavorite(ctx, userID, exhibitionID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add favorite")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Favorite added successfully")
}

// RemoveFavorite removes an exhibition from the user's favorites. Removing an
// absent one is a no-op.
// @Summary Remove a favorite exhibition
// @Tags User
// @Produce json
// @Param exhibitionID path string true "Exhibition ID"
// @Success 200 {object} response.Envelope "Favorite removed successfully"
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /v1/users/me/favorites/{exhibitionID} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveFavorite")
	defer scope.End()

	exhibitionID := chi.URLParam(r, constant.RequestParamExhibitionID)

	if err := validator.ValidateVar(exhibitionID, "required,uuid"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid exhibition id")

		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.RemoveFavorite(ctx, userID, exhibitionID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove favorite")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Favorite removed successfully")
}
