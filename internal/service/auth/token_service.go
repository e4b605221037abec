package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jhonfrank/bookstore-api/internal/config"
)

// TokenService defines operations for issuing and checking bearer tokens.
//
// A bearer token is an HMAC-SHA256 signed JWT, but it is not trusted on
// signature alone: the SHA-256 hash of every issued token is recorded in the
// token store, and deleting that record revokes the token. Issue returns the
// plaintext token exactly once; Validate only proves integrity and expiry —
// resolving the hash to a user (and therefore catching revocation) is the
// token store's job.
type TokenService interface {
	// Issue creates a signed bearer token for the user and returns the
	// plaintext token alongside the hash to persist.
	Issue(ctx context.Context, userID uuid.UUID) (token string, tokenHash string, err error)

	// Validate checks the token's signature and expiry and returns the
	// hash to look up in the token store. Returns ErrInvalidToken or
	// ErrExpiredToken on failure.
	Validate(ctx context.Context, token string) (tokenHash string, err error)
}

// tokenClaims defines the structure of the JWT claims we use.
type tokenClaims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// hmacTokenService is an implementation of TokenService using HMAC-SHA signing.
type hmacTokenService struct {
	signingKey    []byte
	tokenLifetime time.Duration
	timeFunc      func() time.Time // Injectable for testing
	clockSkew     time.Duration    // Allowed drift when validating time claims
}

// Ensure hmacTokenService implements TokenService interface
var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a new token service using HMAC-SHA signing.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	if len(cfg.TokenSecret) < 32 {
		return nil, fmt.Errorf("token secret must be at least 32 characters")
	}

	return &hmacTokenService{
		signingKey:    []byte(cfg.TokenSecret),
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		timeFunc:      time.Now,
		clockSkew:     2 * time.Minute,
	}, nil
}

// Issue implements TokenService.Issue
func (s *hmacTokenService) Issue(ctx context.Context, userID uuid.UUID) (string, string, error) {
	now := s.timeFunc()

	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
			ID:        uuid.New().String(), // Unique token ID
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token with HMAC-SHA256: %w", err)
	}

	return signed, HashToken(signed), nil
}

// Validate implements TokenService.Validate
func (s *hmacTokenService) Validate(ctx context.Context, tokenString string) (string, error) {
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || claims.UserID == uuid.Nil {
		return "", ErrInvalidToken
	}

	return HashToken(tokenString), nil
}

// HashToken returns the hex-encoded SHA-256 hash of a plaintext token.
// Only this hash is ever persisted; the database never sees the bearer
// string itself.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
