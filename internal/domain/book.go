package domain

import (
	"time"

	"github.com/google/uuid"
)

// Book is a standalone catalog entry with no relations to other entities.
type Book struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	ISBN      string    `json:"isbn"`
	Author    string    `json:"author"`
	Price     float64   `json:"price"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBook creates a new Book with a generated ID and current timestamps.
func NewBook(title, isbn, author string, price float64, isActive bool) *Book {
	now := time.Now().UTC()
	return &Book{
		ID:        uuid.New(),
		Title:     title,
		ISBN:      isbn,
		Author:    author,
		Price:     price,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
