package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user of the bookstore API.
// The plaintext password only exists transiently during registration;
// only the bcrypt hash is ever persisted.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given name, email and hashed password.
// It generates a new UUID for the user ID and sets the creation/update
// timestamps. Password hashing is the caller's responsibility.
func NewUser(name, email, hashedPassword string) *User {
	now := time.Now().UTC()
	return &User{
		ID:             uuid.New(),
		Name:           name,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
