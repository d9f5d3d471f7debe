package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"arthive/config"
	"arthive/infras/kafka"
	"arthive/infras/otel"
	"arthive/internal/domains/newsletter/model"
	"arthive/internal/domains/newsletter/model/dto"
	"arthive/internal/domains/newsletter/repository"
	"arthive/shared/constant"
	gDto "arthive/shared/dto"
	"arthive/shared/failure"

	"github.com/rs/zerolog/log"
)

type Newsletter interface {
	Subscribe(ctx context.Context, req dto.SubscribeRequest) error
	Unsubscribe(ctx context.Context, email string) error
	GetSubscribers(ctx context.Context, params gDto.QueryParams) (dto.GetSubscribersResponse, error)
}

type serviceImpl struct {
	repo     repository.Newsletter
	cfg      *config.Config
	otel     otel.Otel
	producer kafka.Producer
}

func New(repo repository.Newsletter, cfg *config.Config, otl otel.Otel, producer kafka.Producer) Newsletter {
	return &serviceImpl{
		repo:     repo,
		cfg:      cfg,
		otel:     otl,
		producer: producer,
	}
}

func (s *serviceImpl) Subscribe(ctx context.Context, req dto.SubscribeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".newsletter.Subscribe")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check subscriber existence")

		return fmt.Errorf("failed to check subscriber existence: %w", err)
	}

	if exists {
		return failure.Conflict("email is already subscribed") //nolint:wrapcheck
	}

	mod := req.ToModel(constant.ContextGuest)

	if err = s.repo.Insert(ctx, mod); err != nil {
		log.Error().Err(err).Msg("failed to insert subscriber")

		return err
	}

	event := dto.SubscribedEvent{
		Event: constant.NotificationEventNewsletterJoin,
		Email: mod.Email,
	}

	// the subscription stands even when the notification cannot be sent
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.producer.Publish(c, s.cfg.External.Kafka.Topics.Notifications, kafka.Message{Key: mod.ID, Value: event}); err != nil {
			log.Error().Err(err).Msg("failed to publish newsletter subscribed event")
		}
	}()

	return nil
}

func (s *serviceImpl) Unsubscribe(ctx context.Context, email string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".newsletter.Unsubscribe")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, emailFilter(email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check subscriber existence")

		return fmt.Errorf("failed to check subscriber existence: %w", err)
	}

	if !exists {
		return failure.NotFound("subscriber not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, emailFilter(email)); err != nil {
		log.Error().Err(err).Msg("failed to delete subscriber")

		return err
	}

	return nil
}

func (s *serviceImpl) GetSubscribers(ctx context.Context, params gDto.QueryParams) (res dto.GetSubscribersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".newsletter.GetSubscribers")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count subscribers")

		return res, fmt.Errorf("failed to count subscribers: %w", err)
	}

	if params.SortBy == constant.Empty {
		params.SortBy = constant.FieldCreatedAt
		params.SortDir = gDto.SortDirDesc
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get subscribers")

		return res, fmt.Errorf("failed to get subscribers: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    model.TableName,
			},
		},
	}
}
