package newsletter

import (
	"net/http"

	"arthive/config"
	"arthive/infras/otel"
	"arthive/internal/domains/newsletter/model/dto"
	"arthive/internal/domains/newsletter/service"
	"arthive/shared/constant"
	gDto "arthive/shared/dto"
	"arthive/shared/validator"
	"arthive/transport/http/middleware"
	"arthive/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Newsletter
	authMw  middleware.AuthRole
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Newsletter, authMw middleware.AuthRole, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		authMw:  authMw,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/newsletter", func(routerGroup chi.Router) {
		routerGroup.Post("/subscribe", handler.Subscribe)
		routerGroup.Delete("/{email}", handler.Unsubscribe)
	})

	router.Route("/admin/newsletter", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authMw.Auth)
		routerGroup.Use(handler.authMw.RequireRole(constant.RoleAdmin))

		routerGroup.Get("/subscribers", handler.GetSubscribers)
	})
}

// Subscribe adds an email to the newsletter list.
// @Summary Subscribe to the newsletter
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Subscribe Request"
// @Success 201 {object} response.Envelope "Subscribed successfully"
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /v1/newsletter/subscribe [post]
func (handler *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubscribeNewsletter")
	defer scope.End()

	req := dto.SubscribeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Subscribe(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to subscribe")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Subscribed successfully")
}

// Unsubscribe removes an email from the newsletter list.
// @Summary Unsubscribe from the newsletter
// @Tags Newsletter
// @Produce json
// @Param email path string true "Subscriber email"
// @Success 200 {object} response.Envelope "Unsubscribed successfully"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/newsletter/{email} [delete]
func (handler *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnsubscribeNewsletter")
	defer scope.End()

	email := chi.URLParam(r, constant.RequestParamEmail)

	if err := validator.ValidateVar(email, "required,email"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid email")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Unsubscribe(ctx, email); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unsubscribe")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Unsubscribed successfully")
}

// GetSubscribers lists newsletter subscribers, newest first.
// @Summary List newsletter subscribers
// @Tags Admin
// @Produce json
// @Param limit query integer false "Page size"
// @Param skip query integer false "Offset"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /v1/admin/newsletter/subscribers [get]
// @Security BearerAuth
func (handler *Handler) GetSubscribers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNewsletterSubscribers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, handler.cfg.App.Search.DefaultLimit)

	res, err := handler.service.GetSubscribers(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get subscribers")

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
