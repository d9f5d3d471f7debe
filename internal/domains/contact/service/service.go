package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"arthive/config"
	"arthive/infras/kafka"
	"arthive/infras/otel"
	"arthive/internal/domains/contact/model"
	"arthive/internal/domains/contact/model/dto"
	"arthive/internal/domains/contact/repository"
	"arthive/shared"
	"arthive/shared/constant"
	gDto "arthive/shared/dto"
	"arthive/shared/failure"
	"arthive/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Contact interface {
	Create(ctx context.Context, req dto.CreateContactMessageRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, handledOnly *bool) (dto.GetContactMessagesResponse, error)
	MarkHandled(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Contact
	cfg      *config.Config
	otel     otel.Otel
	producer kafka.Producer
}

func New(repo repository.Contact, cfg *config.Config, otl otel.Otel, producer kafka.Producer) Contact {
	return &serviceImpl{
		repo:     repo,
		cfg:      cfg,
		otel:     otl,
		producer: producer,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactMessageRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	mod := req.ToModel(constant.ContextGuest)

	if err = s.repo.Insert(ctx, mod); err != nil {
		log.Error().Err(err).Msg("failed to insert contact message")

		return err
	}

	event := dto.ContactMessageEvent{
		Event:   constant.NotificationEventContactMessage,
		Email:   mod.Email,
		Subject: mod.Subject,
	}

	// stored messages survive a broker outage, the ping is best-effort
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.producer.Publish(c, s.cfg.External.Kafka.Topics.Notifications, kafka.Message{Key: mod.ID, Value: event}); err != nil {
			log.Error().Err(err).Msg("failed to publish contact message event")
		}
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, handledOnly *bool) (res dto.GetContactMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}

	if handledOnly != nil {
		filter = gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldHandled,
					Operator: gDto.FilterOperatorEq,
					Value:    *handledOnly,
					Table:    model.TableName,
				},
			},
		}
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contact messages")

		return res, fmt.Errorf("failed to count contact messages: %w", err)
	}

	if params.SortBy == constant.Empty {
		params.SortBy = constant.FieldCreatedAt
		params.SortDir = gDto.SortDirDesc
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact messages")

		return res, fmt.Errorf("failed to get contact messages: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) MarkHandled(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.MarkHandled")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact message")

		return fmt.Errorf("failed to get contact message: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("contact message not found") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	mod := map[string]any{
		model.FieldHandled:       true,
		model.FieldHandledAt:     timezone.Now(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, mod, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark contact message handled")

		return fmt.Errorf("failed to mark contact message handled: %w", err)
	}

	return nil
}
