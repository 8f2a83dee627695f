package repositories

import (
	"time"

	"storefront/internal/models"
)

// StageUpdate carries an admin stage transition: the target stage plus any
// tracking fields supplied alongside it. Zero-valued fields are left
// untouched on the order.
type StageUpdate struct {
	Stage             string
	TrackingNumber    string
	CarrierName       string
	EstimatedDelivery *time.Time
	Notes             string
	UpdatedBy         string
}

// OrderRepository defines the interface for order data access. Multi-table
// workflows (checkout, stage advancement) commit in a single transaction
// so a failure at any step rolls back the whole workflow.
type OrderRepository interface {
	// CreateFromCart persists the order with its items and clears the
	// owner's cart, all in one transaction. Returns ErrDuplicateKey when
	// the generated order number collides.
	CreateFromCart(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	// GetByIDForUser is the ownership-scoped variant of GetByID.
	GetByIDForUser(id, userID string) (*models.Order, error)
	GetByGatewayOrderID(gatewayOrderID, userID string) (*models.Order, error)
	// SetGatewayOrderID stores the remote payment-gateway order id. The
	// unique constraint makes a second write for the same gateway id fail
	// with ErrDuplicateKey.
	SetGatewayOrderID(orderID, gatewayOrderID string) error
	ListByUser(userID string) ([]models.Order, error)
	// ListByStatuses returns orders in any of the given statuses, newest
	// first, with items+products, the owning user, and payments joined.
	ListByStatuses(statuses []string) ([]models.Order, error)
	// ApplyStageUpdate sets the order status, merges tracking fields, and
	// appends an order_tracking entry in one transaction.
	ApplyStageUpdate(orderID string, update StageUpdate) error
	GetTrackingLog(orderID string) ([]models.OrderTracking, error)
}
