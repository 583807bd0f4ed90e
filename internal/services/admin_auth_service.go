package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Login for any username or password mismatch.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminAuthService authenticates the single configured administrator and
// issues the JWT kept in the admin_token cookie.
type AdminAuthService struct {
	username     string
	passwordHash []byte
	jwtSecret    []byte
	tokenDurat   time.Duration
}

// NewAdminAuthService hashes password once so the plain value is not kept in memory.
func NewAdminAuthService(username, password, jwtSecret string, ttl time.Duration) (*AdminAuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &AdminAuthService{
		username:     username,
		passwordHash: hash,
		jwtSecret:    []byte(jwtSecret),
		tokenDurat:   ttl,
	}, nil
}

// TokenTTL is the lifetime of issued tokens.
func (s *AdminAuthService) TokenTTL() time.Duration {
	return s.tokenDurat
}

// Login checks the credentials and returns a signed token.
func (s *AdminAuthService) Login(username, password string) (string, error) {
	// Compare the hash even for an unknown username.
	hashErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if username != s.username || hashErr != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"role":     "admin",
		"exp":      now.Add(s.tokenDurat).Unix(),
		"iat":      now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a token, returning its claims.
func (s *AdminAuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims["role"] != "admin" || claims["username"] != s.username {
		return nil, errors.New("invalid token: not an admin token")
	}
	return claims, nil
}
