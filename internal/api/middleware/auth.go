// Package middleware provides HTTP middleware for the bookstore API.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jhonfrank/bookstore-api/internal/api/shared"
	"github.com/jhonfrank/bookstore-api/internal/service/auth"
	"github.com/jhonfrank/bookstore-api/internal/store"
)

// AuthMiddleware guards protected routes. It validates the bearer token's
// signature and expiry, then resolves its hash to a user through the token
// store — so a revoked token is rejected even when the signature still
// verifies. The resolved user is attached to the request context for
// handlers to read.
type AuthMiddleware struct {
	tokenService auth.TokenService
	tokens       store.TokenStore
	logger       *slog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService, tokens store.TokenStore, logger *slog.Logger) *AuthMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthMiddleware{
		tokenService: tokenService,
		tokens:       tokens,
		logger:       logger.With(slog.String("component", "auth_middleware")),
	}
}

// Authenticate validates bearer tokens from the Authorization header and
// adds the resolved user to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithEnvelope(w, r, http.StatusUnauthorized, shared.Unauthorized(""))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithEnvelope(w, r, http.StatusUnauthorized, shared.Unauthorized(""))
			return
		}

		tokenHash, err := m.tokenService.Validate(r.Context(), parts[1])
		if err != nil {
			shared.RespondWithEnvelope(w, r, http.StatusUnauthorized, shared.Unauthorized(""))
			return
		}

		user, err := m.tokens.FindUserByTokenHash(r.Context(), tokenHash)
		if err != nil {
			if errors.Is(err, store.ErrTokenNotFound) {
				// Valid signature but no record: the token was revoked.
				shared.RespondWithEnvelope(w, r, http.StatusUnauthorized, shared.Unauthorized(""))
				return
			}
			m.logger.Error("failed to resolve bearer token", slog.String("error", err.Error()))
			shared.RespondWithEnvelope(w, r, http.StatusInternalServerError, shared.InternalError())
			return
		}

		ctx := shared.WithCurrentUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
