package models

import "time"

// Roles a user account can carry. Admin-only routes require RoleAdmin
// in the token's role claim.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents a customer (or administrator) of the store.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Role     string `json:"role" gorm:"type:varchar(16);default:USER"`

	// Shipping address, surfaced on the admin fulfillment queue.
	Address    string `json:"address" validate:"omitempty,max=255"`
	City       string `json:"city" validate:"omitempty,max=100"`
	PostalCode string `json:"postalCode" validate:"omitempty,max=20"`
	Phone      string `json:"phone" validate:"omitempty,max=20"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
