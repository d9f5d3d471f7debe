package analytics

import (
	"net/http"

	"arthive/infras/otel"
	"arthive/internal/domains/analytics/model/dto"
	"arthive/internal/domains/analytics/service"
	"arthive/shared/constant"
	"arthive/shared/validator"
	"arthive/transport/http/middleware"
	"arthive/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Analytics
	authMw  middleware.AuthRole
	otel    otel.Otel
}

func New(service service.Analytics, authMw middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service: service,
		authMw:  authMw,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/analytics", func(routerGroup chi.Router) {
		// OptionalAuth so logged-in visitors are attributed, anonymous ones pass
		routerGroup.Use(handler.authMw.OptionalAuth)

		routerGroup.Post("/track", handler.Track)
	})
}

// Track records a client-side analytics event.
// @Summary Track an analytics event
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body dto.TrackEventRequest true "Event"
// @Success 202 {object} response.Envelope "Event recorded"
// @Failure 400 {object} response.Envelope
// @Router /v1/analytics/track [post]
func (handler *Handler) Track(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TrackAnalyticsEvent")
	defer scope.End()

	req := dto.TrackEventRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Track(ctx, req, r.UserAgent()); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to track analytics event")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusAccepted, "Event recorded")
}
