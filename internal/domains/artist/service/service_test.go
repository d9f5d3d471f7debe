package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arthive/config"
	otelMocks "arthive/infras/otel/mocks"
	artistMocks "arthive/internal/domains/artist/mocks"
	"arthive/internal/domains/artist/model"
	"arthive/internal/domains/artist/model/dto"
	"arthive/internal/domains/artist/service"
	"arthive/shared/cache"
	cacheMocks "arthive/shared/cache/mocks"
	gDto "arthive/shared/dto"
)

func newArtistService(t *testing.T) (service.Artist, *artistMocks.MockArtist, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := artistMocks.NewMockArtist(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, otelMocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestArtistService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newArtistService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Artist{{ID: "a1", Name: "Claude Monet"}}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 20}, "monet")

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
}

func TestArtistService_Get(t *testing.T) {
	svc, mockRepo, _ := newArtistService(t)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Artist{}, nil)

	_, err := svc.Get(context.Background(), "missing")
	assert.Error(t, err)
}

func TestArtistService_Create(t *testing.T) {
	t.Run("new artist", func(t *testing.T) {
		svc, mockRepo, mockCache := newArtistService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		id, err := svc.Create(context.Background(), dto.CreateArtistRequest{Name: "Claude Monet"})

		assert.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc, mockRepo, _ := newArtistService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Create(context.Background(), dto.CreateArtistRequest{Name: "Claude Monet"})
		assert.Error(t, err)
	})
}

func TestArtistService_Update(t *testing.T) {
	t.Run("unknown artist", func(t *testing.T) {
		svc, mockRepo, _ := newArtistService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateArtistRequest{Name: "Renamed"}, "missing")
		assert.Error(t, err)
	})

	t.Run("successful update", func(t *testing.T) {
		svc, mockRepo, mockCache := newArtistService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Update(context.Background(), dto.UpdateArtistRequest{Name: "Renamed"}, "a1")
		assert.NoError(t, err)
	})
}
