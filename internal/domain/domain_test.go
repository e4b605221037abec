package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user := NewUser("Ada Lovelace", "ada@example.com", "bcrypt-hash")

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "bcrypt-hash", user.HashedPassword)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestUserJSONHidesPasswordHash(t *testing.T) {
	t.Parallel()

	user := NewUser("Ada Lovelace", "ada@example.com", "bcrypt-hash")

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "bcrypt-hash")
	assert.Contains(t, string(raw), "ada@example.com")
}

func TestNewBook(t *testing.T) {
	t.Parallel()

	book := NewBook("The Go Programming Language", "978-0134190440", "Donovan & Kernighan", 39.99, true)

	assert.NotEqual(t, uuid.Nil, book.ID)
	assert.Equal(t, 39.99, book.Price)
	assert.True(t, book.IsActive)
	assert.False(t, book.CreatedAt.IsZero())
}

func TestNewOrderDetailBindsToOrder(t *testing.T) {
	t.Parallel()

	orderID := uuid.New()
	bookID := uuid.New()
	detail := NewOrderDetail(orderID, bookID, 15.50, 2, 31.00)

	assert.NotEqual(t, uuid.Nil, detail.ID)
	assert.Equal(t, orderID, detail.OrderID)
	assert.Equal(t, bookID, detail.BookID)
	assert.Equal(t, 2, detail.Quantity)
}

func TestTokenJSONHidesHash(t *testing.T) {
	t.Parallel()

	token := NewToken(uuid.New(), "ada@example.com", "sha256-hex")

	raw, err := json.Marshal(token)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "sha256-hex")
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("email", "must be a valid email address", ErrValidation)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "email")
}
