package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityErrorsMatchGenericSentinels(t *testing.T) {
	t.Parallel()

	notFoundErrs := []error{
		ErrUserNotFound,
		ErrBookNotFound,
		ErrOrderNotFound,
		ErrOrderDetailNotFound,
		ErrTokenNotFound,
	}
	for _, err := range notFoundErrs {
		assert.ErrorIs(t, err, ErrNotFound, err.Error())
	}

	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)

	// The two families never cross.
	assert.NotErrorIs(t, ErrUserNotFound, ErrDuplicate)
	assert.NotErrorIs(t, ErrEmailExists, ErrNotFound)
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrBookNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("query failed: %w", ErrOrderNotFound)))
	assert.False(t, IsNotFoundError(ErrEmailExists))
	assert.False(t, IsNotFoundError(errors.New("not found")))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("insert failed: %w", ErrEmailExists)))
	assert.False(t, IsDuplicateError(ErrUserNotFound))
	assert.False(t, IsDuplicateError(nil))
}
