package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"arthive/config"
	"arthive/infras/kafka"
	"arthive/infras/otel"
	"arthive/internal/domains/analytics/model/dto"
	"arthive/internal/domains/analytics/repository"
	"arthive/shared/constant"

	"github.com/rs/zerolog/log"
)

type Analytics interface {
	Track(ctx context.Context, req dto.TrackEventRequest, userAgent string) error
}

type serviceImpl struct {
	repo     repository.Analytics
	cfg      *config.Config
	otel     otel.Otel
	producer kafka.Producer
}

func New(repo repository.Analytics, cfg *config.Config, otl otel.Otel, producer kafka.Producer) Analytics {
	return &serviceImpl{
		repo:     repo,
		cfg:      cfg,
		otel:     otl,
		producer: producer,
	}
}

// Track stores the event row, then mirrors it onto the analytics topic. The
// publish is fire-and-forget, a broker outage never fails the request.
func (s *serviceImpl) Track(ctx context.Context, req dto.TrackEventRequest, userAgent string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".analytics.Track")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	mod := req.ToModel(userAgent, user)

	if err = s.repo.Insert(ctx, mod); err != nil {
		log.Error().Err(err).Msg("failed to insert analytics event")

		return err
	}

	event := dto.TrackedEvent{}
	event.FromModel(mod)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.producer.Publish(c, s.cfg.External.Kafka.Topics.Analytics, kafka.Message{Key: mod.VisitorID, Value: event}); err != nil {
			log.Error().Err(err).Msg("failed to publish analytics event")
		}
	}()

	return nil
}
