package contact

import (
	"net/http"

	"arthive/config"
	"arthive/infras/otel"
	"arthive/internal/domains/contact/model/dto"
	"arthive/internal/domains/contact/service"
	"arthive/shared/constant"
	gDto "arthive/shared/dto"
	"arthive/shared/failure"
	"arthive/shared/validator"
	"arthive/transport/http/middleware"
	"arthive/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Contact
	authMw  middleware.AuthRole
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Contact, authMw middleware.AuthRole, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		authMw:  authMw,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/contact", handler.CreateMessage)

	router.Route("/admin/contact", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authMw.Auth)
		routerGroup.Use(handler.authMw.RequireRole(constant.RoleAdmin))

		routerGroup.Get("/", handler.GetMessages)
		routerGroup.Patch("/{id}/handled", handler.MarkHandled)
	})
}

// CreateMessage stores a contact form submission.
// @Summary Send a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactMessageRequest true "Contact Message"
// @Success 201 {object} response.Envelope "Message sent successfully"
// @Failure 400 {object} response.Envelope
// @Router /v1/contact [post]
func (handler *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContactMessage")
	defer scope.End()

	req := dto.CreateContactMessageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact message")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Message sent successfully")
}

// GetMessages lists contact messages, optionally filtered by handled state.
// @Summary List contact messages
// @Tags Admin
// @Produce json
// @Param handled query boolean false "Filter by handled state"
// @Param limit query integer false "Page size"
// @Param skip query integer false "Offset"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /v1/admin/contact [get]
// @Security BearerAuth
func (handler *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContactMessages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, handler.cfg.App.Search.DefaultLimit)

	var handledOnly *bool

	if raw := r.URL.Query().Get("handled"); raw != constant.Empty {
		switch raw {
		case "true":
			value := true
			handledOnly = &value
		case "false":
			value := false
			handledOnly = &value
		default:
			err := failure.BadRequestFromString("handled must be true or false")
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}
	}

	res, err := handler.service.GetAll(ctx, queryParams, handledOnly)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact messages")

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

// MarkHandled flags a contact message as dealt with.
// @Summary Mark a contact message handled
// @Tags Admin
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.Envelope "Message marked as handled"
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v1/admin/contact/{id}/handled [patch]
// @Security BearerAuth
func (handler *Handler) MarkHandled(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkContactMessageHandled")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateVar(id, "required,uuid"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid contact message id")

		response.WithError(w, err)

		return
	}

	if err := handler.service.MarkHandled(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark contact message handled")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Message marked as handled")
}
