package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	authport "github.com/fintrack-app/fintrack/internal/domain/port/auth"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
)

// JWTTokenService issues and validates HS256 signed tokens carrying the
// user ID as the subject claim.
type JWTTokenService struct {
	secret       []byte
	tokenTTL     time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTTokenService creates a token service with the given signing secret
// and token lifetime.
func NewJWTTokenService(secret string, tokenTTL time.Duration, timeProvider coreport.TimeProvider) authport.TokenService {
	return &JWTTokenService{
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
		timeProvider: timeProvider,
	}
}

// Generate creates a signed token for the given user
func (s *JWTTokenService) Generate(userID uint64) (string, error) {
	now := s.timeProvider.Now()

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Validate parses a token and returns the user ID it was issued for.
// Expired, malformed or tampered tokens all yield ErrInvalidToken.
func (s *JWTTokenService) Validate(tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.timeProvider.Now))
	if err != nil || !token.Valid {
		return 0, errs.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, errs.ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, errs.ErrInvalidToken
	}

	return userID, nil
}
