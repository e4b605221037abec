package shared

import (
	"context"
	"testing"

	"github.com/jhonfrank/bookstore-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentUserRoundTrip(t *testing.T) {
	t.Parallel()

	user := domain.NewUser("Ada Lovelace", "ada@example.com", "hashed")
	ctx := WithCurrentUser(context.Background(), user)

	got, ok := CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestCurrentUserMissing(t *testing.T) {
	t.Parallel()

	got, ok := CurrentUser(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestCurrentUserNilValue(t *testing.T) {
	t.Parallel()

	ctx := WithCurrentUser(context.Background(), nil)

	got, ok := CurrentUser(ctx)
	assert.False(t, ok)
	assert.Nil(t, got)
}
