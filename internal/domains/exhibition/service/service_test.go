package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arthive/config"
	otelMocks "arthive/infras/otel/mocks"
	s3Mocks "arthive/infras/s3/mocks"
	exhibitionMocks "arthive/internal/domains/exhibition/mocks"
	"arthive/internal/domains/exhibition/model"
	"arthive/internal/domains/exhibition/model/dto"
	"arthive/internal/domains/exhibition/service"
	userMocks "arthive/internal/domains/user/mocks"
	userModel "arthive/internal/domains/user/model"
	"arthive/shared/cache"
	cacheMocks "arthive/shared/cache/mocks"
	gDto "arthive/shared/dto"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Search.DefaultLimit = 20
	cfg.App.Search.NearbyLimit = 50
	cfg.App.Search.NearbyRadiusKm = 10
	cfg.App.Search.RecommendationLimit = 6

	return cfg
}

func coord(value float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: value, Valid: true}
}

func TestExhibitionService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := exhibitionMocks.NewMockExhibition(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := otelMocks.NewOtel()

	svc := service.New(mockRepo, mockUserRepo, testConfig(), mockCache, mockOtel, mockS3)

	tests := []struct {
		name      string
		req       dto.SearchExhibitionsRequest
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "plain listing",
			req:  dto.SearchExhibitionsRequest{City: "London"},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Exhibition{{ID: "a"}, {ID: "b"}}, nil)

				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantTotal: 2,
		},
		{
			name: "ranked text search",
			req:  dto.SearchExhibitionsRequest{Search: "impressionism"},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAllRanked(gomock.Any(), gomock.Any(), gomock.Any(), "impressionism").
					Return([]model.Exhibition{{ID: "a"}}, nil)

				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantTotal: 1,
		},
		{
			name: "count error",
			req:  dto.SearchExhibitionsRequest{},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Search(context.Background(), tt.req, gDto.QueryParams{Limit: 20})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalData)
			}
		})
	}
}

func TestExhibitionService_GetByDate_RequiresDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := exhibitionMocks.NewMockExhibition(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := otelMocks.NewOtel()

	svc := service.New(mockRepo, mockUserRepo, testConfig(), mockCache, mockOtel, mockS3)

	_, err := svc.GetByDate(context.Background(), dto.SearchExhibitionsRequest{}, gDto.QueryParams{})
	assert.Error(t, err)
}

func TestExhibitionService_Nearby(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := exhibitionMocks.NewMockExhibition(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := otelMocks.NewOtel()

	svc := service.New(mockRepo, mockUserRepo, testConfig(), mockCache, mockOtel, mockS3)

	// Trafalgar Square
	lat, lng := 51.5080, -0.1281

	t.Run("invalid coordinates", func(t *testing.T) {
		_, err := svc.Nearby(context.Background(), 123.0, -0.1, 5)
		assert.Error(t, err)
	})

	t.Run("filters by radius and sorts by distance", func(t *testing.T) {
		nearby := model.Exhibition{
			ID:        "near",
			Latitude:  coord(51.5074), // ~0.06 km away
			Longitude: coord(-0.1278),
		}
		farther := model.Exhibition{
			ID:        "farther",
			Latitude:  coord(51.5300),
			Longitude: coord(-0.1281),
		}
		tooFar := model.Exhibition{
			ID:        "paris",
			Latitude:  coord(48.8566),
			Longitude: coord(2.3522),
		}
		noCoords := model.Exhibition{ID: "unknown"}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Exhibition{farther, tooFar, nearby, noCoords}, nil)

		res, err := svc.Nearby(context.Background(), lat, lng, 10)

		assert.NoError(t, err)
		assert.Len(t, res.Exhibitions, 2)
		assert.Equal(t, "near", res.Exhibitions[0].ID)
		assert.Equal(t, "farther", res.Exhibitions[1].ID)
		assert.NotNil(t, res.Exhibitions[0].DistanceKm)
		assert.Less(t, *res.Exhibitions[0].DistanceKm, 1.0)
		assert.Equal(t, 10.0, res.RadiusKm)
	})

	t.Run("omitted radius falls back to the default and is echoed", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Exhibition{}, nil)

		res, err := svc.Nearby(context.Background(), lat, lng, 0)

		assert.NoError(t, err)
		assert.Equal(t, testConfig().App.Search.NearbyRadiusKm, res.RadiusKm)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		_, err := svc.Nearby(context.Background(), lat, lng, 10)
		assert.Error(t, err)
	})
}

func TestExhibitionService_Recommendations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := exhibitionMocks.NewMockExhibition(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := otelMocks.NewOtel()

	svc := service.New(mockRepo, mockUserRepo, testConfig(), mockCache, mockOtel, mockS3)

	soon := time.Now().Add(24 * time.Hour)
	later := time.Now().Add(48 * time.Hour)

	t.Run("user not found", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := svc.Recommendations(context.Background(), "missing", 5)
		assert.Error(t, err)
	})

	t.Run("preference scoring ranks tag matches above artist matches", func(t *testing.T) {
		user := userModel.User{
			ID:            "u1",
			PreferredTags: pq.StringArray{"modern"},
			PreferredArtists: pq.StringArray{
				"Monet",
			},
		}

		tagMatch := model.Exhibition{ID: "tag-match", Tags: pq.StringArray{"modern"}, StartDate: later}
		artistMatch := model.Exhibition{ID: "artist-match", Artists: pq.StringArray{"Monet"}, StartDate: soon}
		noMatch := model.Exhibition{ID: "no-match", StartDate: soon}

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Exhibition{noMatch, artistMatch, tagMatch}, nil)

		res, err := svc.Recommendations(context.Background(), "u1", 5)

		assert.NoError(t, err)
		assert.True(t, res.HasPreferences)
		assert.Equal(t, "tag-match", res.Exhibitions[0].ID)
		assert.Equal(t, "artist-match", res.Exhibitions[1].ID)
		assert.Equal(t, "no-match", res.Exhibitions[2].ID)
	})

	t.Run("no preferences falls back to popularity", func(t *testing.T) {
		user := userModel.User{ID: "u2"}

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Exhibition{
				{ID: "quiet", Popularity: 1, StartDate: soon},
				{ID: "popular", Popularity: 100, StartDate: later},
			}, nil)

		res, err := svc.Recommendations(context.Background(), "u2", 5)

		assert.NoError(t, err)
		assert.False(t, res.HasPreferences)
		assert.Equal(t, "popular", res.Exhibitions[0].ID)
	})

	t.Run("eligibility covers the whole final day", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "u4"}, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Exhibition, error) {
				bound, ok := filter.Filters[1].(gDto.Filter)
				assert.True(t, ok)

				cutoff, ok := bound.Value.(time.Time)
				assert.True(t, ok)
				assert.Equal(t, 0, cutoff.Hour())
				assert.Equal(t, 0, cutoff.Minute())
				assert.Equal(t, 0, cutoff.Second())

				return []model.Exhibition{}, nil
			})

		_, err := svc.Recommendations(context.Background(), "u4", 5)
		assert.NoError(t, err)
	})

	t.Run("limit caps the list", func(t *testing.T) {
		user := userModel.User{ID: "u3"}

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Exhibition{
				{ID: "a", StartDate: soon},
				{ID: "b", StartDate: soon},
				{ID: "c", StartDate: soon},
			}, nil)

		res, err := svc.Recommendations(context.Background(), "u3", 2)

		assert.NoError(t, err)
		assert.Len(t, res.Exhibitions, 2)
	})
}

func TestPreferenceScore(t *testing.T) {
	user := userModel.User{
		PreferredTags:      pq.StringArray{"modern", "sculpture"},
		PreferredArtists:   pq.StringArray{"Monet"},
		PreferredLocations: pq.StringArray{"London"},
	}

	tests := []struct {
		name string
		mod  model.Exhibition
		want int
	}{
		{
			name: "no overlap",
			mod:  model.Exhibition{Tags: pq.StringArray{"baroque"}},
			want: 0,
		},
		{
			name: "single tag counts double",
			mod:  model.Exhibition{Tags: pq.StringArray{"modern"}},
			want: 2,
		},
		{
			name: "repeated tags count once",
			mod:  model.Exhibition{Tags: pq.StringArray{"modern", "modern"}},
			want: 2,
		},
		{
			name: "artist counts once",
			mod:  model.Exhibition{Artists: pq.StringArray{"Monet"}},
			want: 1,
		},
		{
			name: "city match adds one",
			mod:  model.Exhibition{City: "London"},
			want: 1,
		},
		{
			name: "everything together",
			mod: model.Exhibition{
				Tags:    pq.StringArray{"modern", "sculpture"},
				Artists: pq.StringArray{"Monet"},
				City:    "London",
			},
			want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.PreferenceScore(tt.mod, user))
		})
	}
}

func TestExhibitionService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := exhibitionMocks.NewMockExhibition(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := otelMocks.NewOtel()

	svc := service.New(mockRepo, mockUserRepo, testConfig(), mockCache, mockOtel, mockS3)

	t.Run("cache miss loads from repository", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Exhibition{ID: "e1", Title: "Light and Shadow"}, nil)

		mockRepo.EXPECT().
			IncrementPopularity(gomock.Any(), "e1").
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "e1")

		assert.NoError(t, err)
		assert.Equal(t, "e1", res.ID)
		assert.Equal(t, "Light and Shadow", res.Title)
	})

	t.Run("not found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Exhibition{}, nil)

		_, err := svc.Get(context.Background(), "missing")
		assert.Error(t, err)
	})
}

func TestExhibitionService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := exhibitionMocks.NewMockExhibition(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := otelMocks.NewOtel()

	svc := service.New(mockRepo, mockUserRepo, testConfig(), mockCache, mockOtel, mockS3)

	tests := []struct {
		name      string
		req       dto.CreateExhibitionRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateExhibitionRequest{
				Title:      "Color Fields",
				StartDate:  "2026-09-01",
				EndDate:    "2026-10-01",
				CoverImage: "https://cdn.example.com/cover.jpg",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "malformed start date",
			req: dto.CreateExhibitionRequest{
				Title:     "Color Fields",
				StartDate: "01-09-2026",
				EndDate:   "2026-10-01",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "end before start",
			req: dto.CreateExhibitionRequest{
				Title:     "Color Fields",
				StartDate: "2026-10-01",
				EndDate:   "2026-09-01",
			},
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			id, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, id)
			}
		})
	}
}

func TestApplySearchSort(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantBy  string
		wantDir string
	}{
		{name: "popularity descending", token: "-popularity", wantBy: "popularity", wantDir: gDto.SortDirDesc},
		{name: "start date ascending", token: "startDate", wantBy: "start_date", wantDir: gDto.SortDirAsc},
		{name: "unknown token falls back", token: "danger; DROP TABLE", wantBy: "created_at", wantDir: gDto.SortDirDesc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := gDto.QueryParams{}
			service.ApplySearchSort(&params, tt.token)

			assert.Equal(t, tt.wantBy, params.SortBy)
			assert.Equal(t, tt.wantDir, params.SortDir)
		})
	}
}
