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
	newsletterMocks "arthive/internal/domains/newsletter/mocks"
	"arthive/internal/domains/newsletter/model"
	"arthive/internal/domains/newsletter/model/dto"
	"arthive/internal/domains/newsletter/service"
	gDto "arthive/shared/dto"
)

func newNewsletterService(t *testing.T) (service.Newsletter, *newsletterMocks.MockNewsletter, *kafkaMocks.MockProducer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := newsletterMocks.NewMockNewsletter(ctrl)
	mockProducer := kafkaMocks.NewMockProducer(ctrl)

	cfg := &config.Config{}
	cfg.External.Kafka.Topics.Notifications = "arthive.notifications"

	svc := service.New(mockRepo, cfg, otelMocks.NewOtel(), mockProducer)

	return svc, mockRepo, mockProducer
}

func TestNewsletterService_Subscribe(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *newsletterMocks.MockNewsletter, producer *kafkaMocks.MockProducer)
		wantErr   bool
	}{
		{
			name: "new subscriber",
			setupMock: func(repo *newsletterMocks.MockNewsletter, producer *kafkaMocks.MockProducer) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				producer.EXPECT().
					Publish(gomock.Any(), "arthive.notifications", gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "already subscribed",
			setupMock: func(repo *newsletterMocks.MockNewsletter, _ *kafkaMocks.MockProducer) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "existence check fails",
			setupMock: func(repo *newsletterMocks.MockNewsletter, _ *kafkaMocks.MockProducer) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockProducer := newNewsletterService(t)
			tt.setupMock(mockRepo, mockProducer)

			err := svc.Subscribe(context.Background(), dto.SubscribeRequest{Email: "reader@example.com"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewsletterService_Unsubscribe(t *testing.T) {
	t.Run("existing subscriber", func(t *testing.T) {
		svc, mockRepo, _ := newNewsletterService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Unsubscribe(context.Background(), "reader@example.com")
		assert.NoError(t, err)
	})

	t.Run("unknown subscriber", func(t *testing.T) {
		svc, mockRepo, _ := newNewsletterService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Unsubscribe(context.Background(), "ghost@example.com")
		assert.Error(t, err)
	})
}

func TestNewsletterService_GetSubscribers(t *testing.T) {
	svc, mockRepo, _ := newNewsletterService(t)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Subscriber, error) {
			assert.Equal(t, "created_at", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Subscriber{
				{ID: "s1", Email: "a@example.com"},
				{ID: "s2", Email: "b@example.com"},
			}, nil
		})

	res, err := svc.GetSubscribers(context.Background(), gDto.QueryParams{Limit: 20})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Subscribers, 2)
}
