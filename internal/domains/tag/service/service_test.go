package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arthive/config"
	otelMocks "arthive/infras/otel/mocks"
	tagMocks "arthive/internal/domains/tag/mocks"
	"arthive/internal/domains/tag/model"
	"arthive/internal/domains/tag/model/dto"
	"arthive/internal/domains/tag/service"
	"arthive/shared/cache"
	cacheMocks "arthive/shared/cache/mocks"
	gDto "arthive/shared/dto"
)

func newTagService(t *testing.T) (service.Tag, *tagMocks.MockTag, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := tagMocks.NewMockTag(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, otelMocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestTagService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newTagService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Tag{{ID: "t1", Name: "modern"}}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
}

func TestTagService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *tagMocks.MockTag, redisCache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "new tag",
			setupMock: func(repo *tagMocks.MockTag, redisCache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				redisCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "duplicate name",
			setupMock: func(repo *tagMocks.MockTag, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "existence check fails",
			setupMock: func(repo *tagMocks.MockTag, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newTagService(t)
			tt.setupMock(mockRepo, mockCache)

			id, err := svc.Create(context.Background(), dto.CreateTagRequest{Name: "modern"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, id)
			}
		})
	}
}

func TestTagService_Update(t *testing.T) {
	t.Run("renames an existing tag", func(t *testing.T) {
		svc, mockRepo, mockCache := newTagService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "contemporary", fields[model.FieldName])

				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		assert.NoError(t, svc.Update(context.Background(), dto.UpdateTagRequest{Name: "contemporary"}, "t1"))
	})

	t.Run("unknown tag", func(t *testing.T) {
		svc, mockRepo, _ := newTagService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		assert.Error(t, svc.Update(context.Background(), dto.UpdateTagRequest{Name: "contemporary"}, "missing"))
	})
}

func TestTagService_Delete(t *testing.T) {
	t.Run("existing tag", func(t *testing.T) {
		svc, mockRepo, mockCache := newTagService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		assert.NoError(t, svc.Delete(context.Background(), "t1"))
	})

	t.Run("unknown tag", func(t *testing.T) {
		svc, mockRepo, _ := newTagService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		assert.Error(t, svc.Delete(context.Background(), "missing"))
	})
}
