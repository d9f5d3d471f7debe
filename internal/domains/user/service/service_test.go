package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arthive/config"
	otelMocks "arthive/infras/otel/mocks"
	exhibitionMocks "arthive/internal/domains/exhibition/mocks"
	exhibitionModel "arthive/internal/domains/exhibition/model"
	userMocks "arthive/internal/domains/user/mocks"
	"arthive/internal/domains/user/model"
	"arthive/internal/domains/user/model/dto"
	"arthive/internal/domains/user/service"
	"arthive/shared/cache"
	cacheMocks "arthive/shared/cache/mocks"
)

type userServiceMocks struct {
	repo           *userMocks.MockUser
	exhibitionRepo *exhibitionMocks.MockExhibition
	cache          *cacheMocks.MockRedisCache
}

func newUserService(t *testing.T) (service.User, userServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := userServiceMocks{
		repo:           userMocks.NewMockUser(ctrl),
		exhibitionRepo: exhibitionMocks.NewMockExhibition(ctrl),
		cache:          cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.exhibitionRepo, cfg, m.cache, otelMocks.NewOtel())

	return svc, m
}

func TestUserService_GetProfile(t *testing.T) {
	t.Run("cache miss loads from repository", func(t *testing.T) {
		svc, m := newUserService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{ID: "u1", Email: "user@example.com"}, nil)

		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetProfile(context.Background(), "u1")

		assert.NoError(t, err)
		assert.Equal(t, "u1", res.ID)
		assert.Equal(t, "user@example.com", res.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, m := newUserService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		_, err := svc.GetProfile(context.Background(), "missing")
		assert.Error(t, err)
	})
}

func TestUserService_UpdatePreferences(t *testing.T) {
	t.Run("replaces all dimensions", func(t *testing.T) {
		svc, m := newUserService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{ID: "u1"}, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, pq.StringArray{"modern"}, fields[model.FieldPreferredTags])
				assert.Equal(t, pq.StringArray{}, fields[model.FieldPreferredArtists])

				return nil
			})

		m.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.UpdatePreferences(context.Background(), dto.UpdatePreferencesRequest{
			PreferredTags: []string{"modern"},
		}, "u1")

		assert.NoError(t, err)
	})
}

func TestUserService_GetFavorites(t *testing.T) {
	t.Run("no favorites yields empty list without queries", func(t *testing.T) {
		svc, m := newUserService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{ID: "u1"}, nil)

		res, err := svc.GetFavorites(context.Background(), "u1")

		assert.NoError(t, err)
		assert.Empty(t, res)
		assert.NotNil(t, res)
	})

	t.Run("favorites resolved through exhibitions", func(t *testing.T) {
		svc, m := newUserService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{
				ID:                  "u1",
				FavoriteExhibitions: pq.StringArray{"e1", "e2"},
			}, nil)

		m.exhibitionRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]exhibitionModel.Exhibition{{ID: "e1"}, {ID: "e2"}}, nil)

		res, err := svc.GetFavorites(context.Background(), "u1")

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "e1", res[0].ID)
	})
}

func TestUserService_AddFavorite(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m userServiceMocks)
		wantErr   bool
	}{
		{
			name: "successful add",
			setupMock: func(m userServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{ID: "u1"}, nil)

				m.exhibitionRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					AddFavorite(gomock.Any(), "u1", "e1").
					Return(nil)

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "exhibition does not exist",
			setupMock: func(m userServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{ID: "u1"}, nil)

				m.exhibitionRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "existence check fails",
			setupMock: func(m userServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{ID: "u1"}, nil)

				m.exhibitionRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newUserService(t)
			tt.setupMock(m)

			err := svc.AddFavorite(context.Background(), "u1", "e1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_RemoveFavorite(t *testing.T) {
	svc, m := newUserService(t)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.User{ID: "u1"}, nil)

	m.repo.EXPECT().
		RemoveFavorite(gomock.Any(), "u1", "e1").
		Return(nil)

	m.cache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	err := svc.RemoveFavorite(context.Background(), "u1", "e1")
	assert.NoError(t, err)
}
