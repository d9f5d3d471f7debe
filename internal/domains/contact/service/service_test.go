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
	contactMocks "arthive/internal/domains/contact/mocks"
	"arthive/internal/domains/contact/model"
	"arthive/internal/domains/contact/model/dto"
	"arthive/internal/domains/contact/service"
	gDto "arthive/shared/dto"
)

func newContactService(t *testing.T) (service.Contact, *contactMocks.MockContact, *kafkaMocks.MockProducer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockProducer := kafkaMocks.NewMockProducer(ctrl)

	cfg := &config.Config{}
	cfg.External.Kafka.Topics.Notifications = "arthive.notifications"

	svc := service.New(mockRepo, cfg, otelMocks.NewOtel(), mockProducer)

	return svc, mockRepo, mockProducer
}

func TestContactService_Create(t *testing.T) {
	t.Run("stores message", func(t *testing.T) {
		svc, mockRepo, mockProducer := newContactService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		mockProducer.EXPECT().
			Publish(gomock.Any(), "arthive.notifications", gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Create(context.Background(), dto.CreateContactMessageRequest{
			Name:    "Visitor",
			Email:   "visitor@example.com",
			Subject: "Opening hours",
			Message: "Are you open on Mondays?",
		})

		assert.NoError(t, err)
	})

	t.Run("insert fails", func(t *testing.T) {
		svc, mockRepo, _ := newContactService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("db down"))

		err := svc.Create(context.Background(), dto.CreateContactMessageRequest{
			Name:    "Visitor",
			Email:   "visitor@example.com",
			Subject: "Opening hours",
			Message: "Are you open on Mondays?",
		})

		assert.Error(t, err)
	})
}

func TestContactService_GetAll(t *testing.T) {
	t.Run("unfiltered listing", func(t *testing.T) {
		svc, mockRepo, _ := newContactService(t)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ContactMessage{{ID: "m1"}}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 20}, nil)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
	})

	t.Run("handled filter narrows the query", func(t *testing.T) {
		svc, mockRepo, _ := newContactService(t)
		handled := true

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				assert.Len(t, filter.Filters, 1)

				return 0, nil
			})

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ContactMessage{}, nil)

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 20}, &handled)
		assert.NoError(t, err)
	})
}

func TestContactService_MarkHandled(t *testing.T) {
	t.Run("marks an existing message", func(t *testing.T) {
		svc, mockRepo, _ := newContactService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.ContactMessage{ID: "m1"}, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, true, fields[model.FieldHandled])
				assert.NotNil(t, fields[model.FieldHandledAt])

				return nil
			})

		err := svc.MarkHandled(context.Background(), "m1")
		assert.NoError(t, err)
	})

	t.Run("unknown message", func(t *testing.T) {
		svc, mockRepo, _ := newContactService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.ContactMessage{}, nil)

		err := svc.MarkHandled(context.Background(), "missing")
		assert.Error(t, err)
	})
}
