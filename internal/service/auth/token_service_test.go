package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jhonfrank/bookstore-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		TokenSecret:          "test-secret-key-thats-long-enough-for-hmac",
		TokenLifetimeMinutes: 60,
	}
}

func TestNewTokenService(t *testing.T) {
	t.Parallel()

	t.Run("accepts a sufficiently long secret", func(t *testing.T) {
		svc, err := NewTokenService(testAuthConfig())
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("rejects a short secret", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.TokenSecret = "too-short"

		svc, err := NewTokenService(cfg)
		assert.Error(t, err)
		assert.Nil(t, svc)
	})
}

func TestIssueAndValidate(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, tokenHash, err := svc.Issue(context.Background(), userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, HashToken(token), tokenHash)

	gotHash, err := svc.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, tokenHash, gotHash)
}

func TestIssueProducesUniqueTokens(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)

	userID := uuid.New()
	first, firstHash, err := svc.Issue(context.Background(), userID)
	require.NoError(t, err)
	second, secondHash, err := svc.Issue(context.Background(), userID)
	require.NoError(t, err)

	// The jti claim makes every token distinct even for the same user and
	// issue time.
	assert.NotEqual(t, first, second)
	assert.NotEqual(t, firstHash, secondHash)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)

	token, _, err := svc.Issue(context.Background(), uuid.New())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Validate(context.Background(), tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsTokenFromOtherSecret(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)

	otherCfg := testAuthConfig()
	otherCfg.TokenSecret = "a-different-secret-key-of-sufficient-size"
	other, err := NewTokenService(otherCfg)
	require.NoError(t, err)

	token, _, err := other.Issue(context.Background(), uuid.New())
	require.NoError(t, err)

	_, err = svc.Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)

	impl, ok := svc.(*hmacTokenService)
	require.True(t, ok)

	// Issue in the past, validate in the present, well beyond skew.
	issuedAt := time.Now().Add(-3 * time.Hour)
	impl.timeFunc = func() time.Time { return issuedAt }
	token, _, err := svc.Issue(context.Background(), uuid.New())
	require.NoError(t, err)

	impl.timeFunc = time.Now
	_, err = svc.Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateHonorsClockSkew(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)

	impl, ok := svc.(*hmacTokenService)
	require.True(t, ok)

	// Expired one minute ago but within the two-minute leeway.
	issuedAt := time.Now().Add(-61 * time.Minute)
	impl.timeFunc = func() time.Time { return issuedAt }
	token, _, err := svc.Issue(context.Background(), uuid.New())
	require.NoError(t, err)

	impl.timeFunc = time.Now
	_, err = svc.Validate(context.Background(), token)
	assert.NoError(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	t.Parallel()

	svc, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.Validate(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestHashTokenIsDeterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, HashToken("bearer-string"), HashToken("bearer-string"))
	assert.NotEqual(t, HashToken("bearer-string"), HashToken("other-string"))
	assert.Len(t, HashToken("bearer-string"), 64)
}
