package repositories

import "storefront/internal/models"

// CartRepository defines the interface for cart data access. All reads and
// writes are scoped to a user; ownership checks happen in the where-clause,
// not above it.
type CartRepository interface {
	// GetLines returns the user's cart lines with products preloaded. A
	// line whose product no longer exists comes back with Product == nil.
	GetLines(userID string) ([]models.CartLine, error)
	// GetLine looks up the user's line for a product.
	GetLine(userID, productID string) (*models.CartLine, error)
	Create(line *models.CartLine) error
	// IncrementQuantity adds delta to the stored quantity atomically
	// (quantity = quantity + delta at the database level), so concurrent
	// adds never clobber each other.
	IncrementQuantity(lineID string, delta int) error
	SetQuantity(lineID string, quantity int) error
	// DeleteByProduct removes the user's line for a product.
	DeleteByProduct(userID, productID string) error
	// Clear removes every line for the user. Clearing an empty cart is a
	// no-op, not an error.
	Clear(userID string) error
}
