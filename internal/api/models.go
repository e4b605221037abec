package api

// Request payload structures. Validation tags express the presence rules for
// each operation; numeric and boolean fields use pointers so that an
// explicit zero value (price 0.0, is_active false) is accepted while an
// absent field still fails the required check.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name                 string `json:"name"                  validate:"required,max=255"`
	Email                string `json:"email"                 validate:"required,email,max=255"`
	Password             string `json:"password"              validate:"required,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// CredentialsRequest defines the payload for the generate-token and
// revoke-all-tokens endpoints, both of which verify an email/password pair.
type CredentialsRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// BookPayload defines the payload for book create and update. Updates are
// full-record: the same fields are required as for create.
type BookPayload struct {
	Title    string   `json:"title"     validate:"required"`
	ISBN     string   `json:"isbn"      validate:"required"`
	Author   string   `json:"author"    validate:"required"`
	Price    *float64 `json:"price"     validate:"required"`
	IsActive *bool    `json:"is_active" validate:"required"`
}

// OrderPayload defines the payload for order create and update.
type OrderPayload struct {
	Number string   `json:"number"  validate:"required"`
	Total  *float64 `json:"total"   validate:"required"`
	UserID string   `json:"user_id" validate:"required,uuid"`
}

// OrderDetailPayload defines the payload for order detail create and update.
// order_id is required in the body for parity with the other payloads, but
// the detail is always bound to the order named in the URL path.
type OrderDetailPayload struct {
	UnitPrice *float64 `json:"unit_price" validate:"required"`
	Quantity  *int     `json:"quantity"   validate:"required"`
	SubTotal  *float64 `json:"sub_total"  validate:"required"`
	OrderID   string   `json:"order_id"   validate:"required,uuid"`
	BookID    string   `json:"book_id"    validate:"required,uuid"`
}
