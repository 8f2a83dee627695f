package repositories

import "storefront/internal/models"

// PaymentRepository defines the interface for payment data access.
type PaymentRepository interface {
	// RecordSuccess commits the whole payment-confirmation workflow in one
	// transaction: insert the payment row, flip the order to CONFIRMED
	// with the payment method, append the CONFIRMED tracking entry, and
	// clear the payer's cart. The unique order_id constraint on payments
	// makes a replay fail with ErrDuplicateKey before anything mutates.
	RecordSuccess(payment *models.Payment) error
	GetByOrderID(orderID string) (*models.Payment, error)
}
