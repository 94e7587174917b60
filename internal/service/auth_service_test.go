package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"socialdesk/internal/apperr"
	"socialdesk/internal/config"
	"socialdesk/internal/models"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:         "test-secret-key",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes email and creates user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, authTestConfig())

		userRepo.On("GetUserByEmail", ctx, "maria@example.com").
			Return(nil, apperr.NotFoundf("user"))
		userRepo.On("CreateUser", ctx, mock.MatchedBy(func(user *models.User) bool {
			return user.Email == "maria@example.com" && user.FullName == "Maria Silva"
		}), "password123").Return(nil)

		user, err := svc.Register(ctx, RegisterRequest{
			FullName: "  Maria Silva ",
			Email:    " Maria@Example.COM ",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, "maria@example.com", user.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("existing email conflicts", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, authTestConfig())

		userRepo.On("GetUserByEmail", ctx, "maria@example.com").
			Return(&models.User{UserID: "user-1", Email: "maria@example.com"}, nil)

		_, err := svc.Register(ctx, RegisterRequest{
			FullName: "Maria Silva",
			Email:    "maria@example.com",
			Password: "password123",
		})

		assert.ErrorIs(t, err, apperr.ErrConflict)
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	cfg := authTestConfig()
	user := &models.User{
		UserID:   "user-1",
		FullName: "Maria Silva",
		Email:    "maria@example.com",
	}

	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, cfg)

	userRepo.On("VerifyPassword", ctx, "maria@example.com", "password123").Return(user, nil)
	userRepo.On("UpdateRefreshToken", ctx, "user-1", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil)

	got, accessToken, refreshToken, err := svc.Login(ctx, "maria@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.NotEmpty(t, refreshToken)

	// The access token carries the identity claims the middleware reads.
	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecretKey), nil
	})
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims["userId"])
	assert.Equal(t, "maria@example.com", claims["email"])
	assert.Equal(t, "Maria Silva", claims["name"])
}

func TestAuthService_RefreshTokens(t *testing.T) {
	ctx := context.Background()
	user := &models.User{
		UserID:       "user-1",
		Email:        "maria@example.com",
		RefreshToken: "old-token",
	}

	t.Run("rotates the refresh token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, authTestConfig())

		userRepo.On("GetUserByRefreshToken", ctx, "old-token").Return(user, nil)
		userRepo.On("UpdateRefreshToken", ctx, "user-1", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
			Return(nil)

		_, _, newRefreshToken, err := svc.RefreshTokens(ctx, "old-token")

		require.NoError(t, err)
		assert.NotEqual(t, "old-token", newRefreshToken)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, authTestConfig())

		userRepo.On("GetUserByRefreshToken", ctx, "stale").
			Return(nil, apperr.Expiredf("refresh token"))

		_, _, _, err := svc.RefreshTokens(ctx, "stale")

		assert.ErrorIs(t, err, apperr.ErrExpired)
		userRepo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
