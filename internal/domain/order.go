package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is a purchase order belonging to a user. It owns zero or more
// OrderDetail rows; details are always accessed through their parent order.
type Order struct {
	ID        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	Total     float64   `json:"total"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewOrder creates a new Order with a generated ID and current timestamps.
func NewOrder(number string, total float64, userID uuid.UUID) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:        uuid.New(),
		Number:    number,
		Total:     total,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// OrderDetail is a line item of an Order. It references a Book, but the
// reference is not enforced beyond input presence: deleting a book does not
// cascade into details, and a detail may point at a book that no longer
// exists.
type OrderDetail struct {
	ID        uuid.UUID `json:"id"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	SubTotal  float64   `json:"sub_total"`
	OrderID   uuid.UUID `json:"order_id"`
	BookID    uuid.UUID `json:"book_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewOrderDetail creates a new OrderDetail bound to the given order.
func NewOrderDetail(orderID, bookID uuid.UUID, unitPrice float64, quantity int, subTotal float64) *OrderDetail {
	now := time.Now().UTC()
	return &OrderDetail{
		ID:        uuid.New(),
		UnitPrice: unitPrice,
		Quantity:  quantity,
		SubTotal:  subTotal,
		OrderID:   orderID,
		BookID:    bookID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
