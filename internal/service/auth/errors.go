package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or the signature
	// doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrIncorrectCredentials indicates the email/password pair did not
	// verify. The same error covers an unknown email and a wrong password
	// so callers cannot tell which check failed.
	ErrIncorrectCredentials = errors.New("incorrect credentials")

	// ErrActiveTokenExists indicates the user already holds a live token.
	// Login is refused rather than renewed.
	ErrActiveTokenExists = errors.New("user already has an active token")
)
