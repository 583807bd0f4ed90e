package services_test

import (
	"fmt"
	"testing"
	"time"

	"chai/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test_jwt_secret"

func TestAdminAuthService_Login(t *testing.T) {
	authService, err := services.NewAdminAuthService("admin", "password123", testJWTSecret, time.Hour)
	require.NoError(t, err)

	token, err := authService.Login("admin", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, "admin", claims["role"])

	_, err = authService.Login("admin", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = authService.Login("someone", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAdminAuthService_ValidateToken(t *testing.T) {
	authService, err := services.NewAdminAuthService("admin", "password123", testJWTSecret, time.Hour)
	require.NoError(t, err)

	token, err := authService.Login("admin", "password123")
	require.NoError(t, err)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims["username"])

	_, err = authService.ValidateToken("not-a-token")
	assert.Error(t, err)

	other, err := services.NewAdminAuthService("admin", "password123", "another_secret", time.Hour)
	require.NoError(t, err)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestAdminAuthService_ExpiredToken(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "admin",
		"role":     "admin",
		"exp":      time.Now().Add(-time.Minute).Unix(),
		"iat":      time.Now().Add(-time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	authService, err := services.NewAdminAuthService("admin", "password123", testJWTSecret, time.Hour)
	require.NoError(t, err)
	_, err = authService.ValidateToken(tokenString)
	assert.Error(t, err)
}
