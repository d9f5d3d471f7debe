package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arthive/config"
	kafkaMocks "arthive/infras/kafka/mocks"
	otelMocks "arthive/infras/otel/mocks"
	analyticsMocks "arthive/internal/domains/analytics/mocks"
	"arthive/internal/domains/analytics/model"
	"arthive/internal/domains/analytics/model/dto"
	"arthive/internal/domains/analytics/service"
	"arthive/shared/constant"
)

func newAnalyticsService(t *testing.T) (service.Analytics, *analyticsMocks.MockAnalytics, *kafkaMocks.MockProducer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := analyticsMocks.NewMockAnalytics(ctrl)
	mockProducer := kafkaMocks.NewMockProducer(ctrl)

	cfg := &config.Config{}
	cfg.External.Kafka.Topics.Analytics = "arthive.analytics"

	svc := service.New(mockRepo, cfg, otelMocks.NewOtel(), mockProducer)

	return svc, mockRepo, mockProducer
}

func TestAnalyticsService_Track(t *testing.T) {
	req := dto.TrackEventRequest{
		EventType: "page_view",
		Path:      "/exhibitions",
		VisitorID: "v1",
	}

	t.Run("anonymous visitor is recorded as guest", func(t *testing.T) {
		svc, mockRepo, mockProducer := newAnalyticsService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod model.Event) error {
				assert.Equal(t, constant.ContextGuest, mod.CreatedBy)
				assert.Equal(t, "page_view", mod.EventType)

				return nil
			})

		mockProducer.EXPECT().
			Publish(gomock.Any(), "arthive.analytics", gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Track(context.Background(), req, "Mozilla/5.0")
		assert.NoError(t, err)
	})

	t.Run("authenticated visitor keeps their id", func(t *testing.T) {
		svc, mockRepo, mockProducer := newAnalyticsService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod model.Event) error {
				assert.Equal(t, "u1", mod.CreatedBy)

				return nil
			})

		mockProducer.EXPECT().
			Publish(gomock.Any(), "arthive.analytics", gomock.Any()).
			Return(nil).
			AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "u1")

		err := svc.Track(ctx, req, "Mozilla/5.0")
		assert.NoError(t, err)
	})

	t.Run("insert failure surfaces", func(t *testing.T) {
		svc, mockRepo, _ := newAnalyticsService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("db down"))

		err := svc.Track(context.Background(), req, "Mozilla/5.0")
		assert.Error(t, err)
	})
}
