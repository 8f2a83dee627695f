package models

import "time"

// CartLine is one product entry in a user's cart. At most one line exists
// per (user, product); repeat adds increment the quantity instead of
// inserting a second row. A stored quantity is always >= 1.
type CartLine struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"index;type:varchar(36)"`
	ProductID string    `json:"productId" gorm:"type:varchar(36)"`
	Quantity  int       `json:"quantity"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName keeps the table name aligned with the persisted schema.
func (CartLine) TableName() string {
	return "cart"
}

// CartItemView is a cart line joined with its product summary, as returned
// to clients.
type CartItemView struct {
	LineID    string  `json:"lineId"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	ImageURL  string  `json:"imageUrl"`
	Rate      float64 `json:"rate"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// CartSummary is the result of a cart-totals computation. A line whose
// product no longer resolves contributes zero to TotalAmount and appears
// in Warnings instead of failing the whole read.
type CartSummary struct {
	Items       []CartItemView `json:"items"`
	TotalAmount float64        `json:"totalAmount"`
	TotalItems  int            `json:"totalItems"`
	ItemCount   int            `json:"itemCount"`
	Warnings    []string       `json:"warnings,omitempty"`
}
