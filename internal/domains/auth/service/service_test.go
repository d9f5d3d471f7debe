package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arthive/config"
	"arthive/infras/jwt"
	jwtMocks "arthive/infras/jwt/mocks"
	kafkaMocks "arthive/infras/kafka/mocks"
	otelMocks "arthive/infras/otel/mocks"
	"arthive/internal/domains/auth/model/dto"
	"arthive/internal/domains/auth/service"
	userMocks "arthive/internal/domains/user/mocks"
	userModel "arthive/internal/domains/user/model"
	"arthive/shared/cache"
	cacheMocks "arthive/shared/cache/mocks"
	"arthive/shared/password"
)

type authMocks struct {
	userRepo *userMocks.MockUser
	jwt      *jwtMocks.MockJWT
	cache    *cacheMocks.MockRedisCache
	producer *kafkaMocks.MockProducer
}

func newAuthService(t *testing.T) (service.Auth, authMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := authMocks{
		userRepo: userMocks.NewMockUser(ctrl),
		jwt:      jwtMocks.NewMockJWT(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		producer: kafkaMocks.NewMockProducer(ctrl),
	}

	cfg := &config.Config{}
	cfg.Auth.ResetTokenTTLMinutes = 30
	cfg.App.BaseURL = "https://arthive.example.com"
	cfg.External.Kafka.Topics.Notifications = "arthive.notifications"

	svc := service.New(m.userRepo, cfg, otelMocks.NewOtel(), m.jwt, m.cache, m.producer)

	return svc, m
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func(m authMocks)
		wantErr   bool
	}{
		{
			name: "successful registration",
			req:  dto.RegisterRequest{Email: "new@example.com", Password: "secret-password"},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.userRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "duplicate email",
			req:  dto.RegisterRequest{Email: "taken@example.com", Password: "secret-password"},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "existence check fails",
			req:  dto.RegisterRequest{Email: "new@example.com", Password: "secret-password"},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setupMock(m)

			err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := password.Hash("correct-password")
	assert.NoError(t, err)

	activeUser := userModel.User{
		ID:       "u1",
		Email:    "user@example.com",
		Password: hashed,
		Level:    "user",
		Active:   true,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(m authMocks)
		wantErr   bool
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "user@example.com", Password: "correct-password"},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeUser, nil)

				m.jwt.EXPECT().
					GenerateTokenPair("u1", "user@example.com", "user").
					Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil)

				m.userRepo.EXPECT().
					UpdateLastLogin(gomock.Any(), "u1").
					Return(nil)
			},
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "user@example.com", Password: "wrong-password"},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeUser, nil)
			},
			wantErr: true,
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "ghost@example.com", Password: "correct-password"},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: "user@example.com", Password: "correct-password"},
			setupMock: func(m authMocks) {
				deactivated := activeUser
				deactivated.Active = false

				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deactivated, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setupMock(m)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access", res.AccessToken)
				assert.Equal(t, "refresh", res.RefreshToken)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("valid refresh token", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.jwt.EXPECT().
			RefreshTokens("old-refresh").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.jwt.EXPECT().
			RefreshTokens("garbage").
			Return(nil, errors.New("token expired"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "garbage"})
		assert.Error(t, err)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	hashed, err := password.Hash("current-password")
	assert.NoError(t, err)

	user := userModel.User{ID: "u1", Password: hashed, Active: true}

	t.Run("successful change", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		m.userRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "current-password",
			NewPassword:     "brand-new-password",
		}, "u1")

		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "not-it",
			NewPassword:     "brand-new-password",
		}, "u1")

		assert.Error(t, err)
	})

	t.Run("user not found", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "current-password",
			NewPassword:     "brand-new-password",
		}, "missing")

		assert.Error(t, err)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	t.Run("known email stores token and publishes event", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "u1", Email: "user@example.com", Active: true}, nil)

		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), "u1", 30*60).
			Return(nil)

		m.producer.EXPECT().
			Publish(gomock.Any(), "arthive.notifications", gomock.Any()).
			Return(nil)

		err := svc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{Email: "user@example.com"})
		assert.NoError(t, err)
	})

	t.Run("unknown email succeeds without side effects", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		err := svc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{Email: "ghost@example.com"})
		assert.NoError(t, err)
	})

	t.Run("inactive account succeeds without side effects", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "u1", Active: false}, nil)

		err := svc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{Email: "user@example.com"})
		assert.NoError(t, err)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	t.Run("valid token resets and drops the token", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dst any) error {
				*(dst.(*string)) = "u1"

				return nil
			})

		m.userRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
			Token:       "11111111-1111-1111-1111-111111111111",
			NewPassword: "brand-new-password",
		})

		assert.NoError(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		err := svc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
			Token:       "11111111-1111-1111-1111-111111111111",
			NewPassword: "brand-new-password",
		})

		assert.Error(t, err)
	})
}
