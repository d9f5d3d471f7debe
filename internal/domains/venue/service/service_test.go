package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arthive/config"
	otelMocks "arthive/infras/otel/mocks"
	exhibitionMocks "arthive/internal/domains/exhibition/mocks"
	exhibitionModel "arthive/internal/domains/exhibition/model"
	venueMocks "arthive/internal/domains/venue/mocks"
	"arthive/internal/domains/venue/model"
	"arthive/internal/domains/venue/model/dto"
	"arthive/internal/domains/venue/service"
	"arthive/shared/cache"
	cacheMocks "arthive/shared/cache/mocks"
	"arthive/shared/constant"
	gDto "arthive/shared/dto"
)

type venueServiceMocks struct {
	repo           *venueMocks.MockVenue
	exhibitionRepo *exhibitionMocks.MockExhibition
	cache          *cacheMocks.MockRedisCache
}

func newVenueService(t *testing.T) (service.Venue, venueServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := venueServiceMocks{
		repo:           venueMocks.NewMockVenue(ctrl),
		exhibitionRepo: exhibitionMocks.NewMockExhibition(ctrl),
		cache:          cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.exhibitionRepo, cfg, m.cache, otelMocks.NewOtel())

	return svc, m
}

func TestVenueService_GetAll(t *testing.T) {
	svc, m := newVenueService(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Venue{{ID: "v1", Name: "National Gallery"}}, nil)

	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 20}, "London")

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
}

func TestVenueService_Get(t *testing.T) {
	t.Run("unknown venue", func(t *testing.T) {
		svc, m := newVenueService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Venue{}, nil)

		_, err := svc.Get(context.Background(), "missing")
		assert.Error(t, err)
	})
}

func TestVenueService_GetExhibitions(t *testing.T) {
	t.Run("lists active exhibitions at the venue", func(t *testing.T) {
		svc, m := newVenueService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.exhibitionRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		m.exhibitionRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]exhibitionModel.Exhibition{{ID: "e1"}}, nil)

		res, err := svc.GetExhibitions(context.Background(), "v1", gDto.QueryParams{Limit: 20})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
	})

	t.Run("unknown venue", func(t *testing.T) {
		svc, m := newVenueService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.GetExhibitions(context.Background(), "missing", gDto.QueryParams{})
		assert.Error(t, err)
	})
}

func TestVenueService_Delete(t *testing.T) {
	t.Run("deactivates instead of removing", func(t *testing.T) {
		svc, m := newVenueService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				active, ok := fields[model.FieldActive].(*bool)
				if assert.True(t, ok) {
					assert.False(t, *active)
				}

				assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

				return nil
			})

		m.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

		assert.NoError(t, svc.Delete(ctx, "v1"))
	})

	t.Run("unknown venue", func(t *testing.T) {
		svc, m := newVenueService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		assert.Error(t, svc.Delete(context.Background(), "missing"))
	})

	t.Run("existence check fails", func(t *testing.T) {
		svc, m := newVenueService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, errors.New("db down"))

		assert.Error(t, svc.Delete(context.Background(), "v1"))
	})
}

func TestVenueService_Create(t *testing.T) {
	svc, m := newVenueService(t)

	m.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	m.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	id, err := svc.Create(context.Background(), dto.CreateVenueRequest{Name: "National Gallery", City: "London"})

	assert.NoError(t, err)
	assert.NotEmpty(t, id)
}
