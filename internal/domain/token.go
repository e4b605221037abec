package domain

import (
	"time"

	"github.com/google/uuid"
)

// Token is the server-side record of an issued bearer token. The plaintext
// bearer string is handed to the client exactly once at login; only its
// SHA-256 hash is stored. A token is active as long as its record exists —
// revocation deletes the row, which invalidates the bearer string regardless
// of its signature or expiry.
type Token struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	TokenHash string    `json:"-"` // Never expose the hash in JSON
	CreatedAt time.Time `json:"created_at"`
}

// NewToken creates a new Token record for the given user.
func NewToken(userID uuid.UUID, name, tokenHash string) *Token {
	return &Token{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		TokenHash: tokenHash,
		CreatedAt: time.Now().UTC(),
	}
}
