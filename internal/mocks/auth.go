package mocks

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jhonfrank/bookstore-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing.
type MockTokenService struct {
	// Token and Hash are returned by Issue when IssueFn is unset.
	Token string
	Hash  string
	Err   error

	IssueFn    func(ctx context.Context, userID uuid.UUID) (string, string, error)
	ValidateFn func(ctx context.Context, token string) (string, error)
}

// Ensure MockTokenService implements auth.TokenService interface
var _ auth.TokenService = (*MockTokenService)(nil)

// Issue implements the TokenService interface.
func (m *MockTokenService) Issue(ctx context.Context, userID uuid.UUID) (string, string, error) {
	if m.IssueFn != nil {
		return m.IssueFn(ctx, userID)
	}
	return m.Token, m.Hash, m.Err
}

// Validate implements the TokenService interface.
func (m *MockTokenService) Validate(ctx context.Context, token string) (string, error) {
	if m.ValidateFn != nil {
		return m.ValidateFn(ctx, token)
	}
	if m.Err != nil {
		return "", m.Err
	}
	if token != m.Token {
		return "", auth.ErrInvalidToken
	}
	return m.Hash, nil
}

// MockPasswordHasher implements auth.PasswordHasher for testing.
type MockPasswordHasher struct {
	// HashValue is returned for every input when set; otherwise the
	// plaintext is echoed back with a marker prefix.
	HashValue string
	Err       error
}

// Ensure MockPasswordHasher implements auth.PasswordHasher interface
var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the PasswordHasher interface.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.HashValue != "" {
		return m.HashValue, nil
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
type MockPasswordVerifier struct {
	// ShouldSucceed makes every comparison pass when true.
	ShouldSucceed bool
}

// Ensure MockPasswordVerifier implements auth.PasswordVerifier interface
var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements the PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}
