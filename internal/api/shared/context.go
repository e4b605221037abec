package shared

import (
	"context"

	"github.com/jhonfrank/bookstore-api/internal/domain"
)

// ContextKey is the type for context keys defined by this package.
type ContextKey string

// CurrentUserContextKey is the context key under which the authentication
// middleware stores the resolved user for protected routes. Handlers read
// the user from the request context instead of consulting any global
// authentication state.
const CurrentUserContextKey ContextKey = "currentUser"

// WithCurrentUser returns a new context carrying the authenticated user.
func WithCurrentUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, CurrentUserContextKey, user)
}

// CurrentUser extracts the authenticated user from the context.
// Returns the user and a boolean indicating whether one was attached.
func CurrentUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(CurrentUserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
