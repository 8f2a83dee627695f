package models

import "time"

// Order statuses. An order is created PENDING at checkout, flips to
// CONFIRMED once payment verification succeeds, then moves forward through
// the fulfillment stages. DELIVERED and CANCELLED are terminal.
const (
	OrderStatusPending        = "PENDING"
	OrderStatusConfirmed      = "CONFIRMED"
	OrderStatusPacked         = "PACKED"
	OrderStatusShipped        = "SHIPPED"
	OrderStatusInTransit      = "IN_TRANSIT"
	OrderStatusOutForDelivery = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      = "DELIVERED"
	OrderStatusCancelled      = "CANCELLED"
)

// ShipmentStages is the fixed forward order of fulfillment stages. Stage
// monotonicity and the tracking view both derive from indices into this
// list.
var ShipmentStages = []string{
	OrderStatusConfirmed,
	OrderStatusPacked,
	OrderStatusShipped,
	OrderStatusInTransit,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// StageIndex returns the position of status within ShipmentStages, or -1
// for statuses outside the fulfillment progression (PENDING, CANCELLED).
func StageIndex(status string) int {
	for i, s := range ShipmentStages {
		if s == status {
			return i
		}
	}
	return -1
}

// IsTerminalStatus reports whether no further transition is allowed.
func IsTerminalStatus(status string) bool {
	return status == OrderStatusDelivered || status == OrderStatusCancelled
}

// Order is a persisted checkout result. Identity and line items are
// immutable after creation; status and tracking fields change over the
// order's lifecycle.
type Order struct {
	ID              string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string  `json:"userId" gorm:"index;type:varchar(36)"`
	OrderNumber     string  `json:"orderNumber" gorm:"uniqueIndex;type:varchar(64)"`
	Status          string  `json:"status" gorm:"type:varchar(24);default:PENDING"`
	TotalAmount     float64 `json:"totalAmount"`
	Currency        string  `json:"currency" gorm:"type:varchar(8);default:INR"`
	PaymentMethod   string  `json:"paymentMethod" gorm:"type:varchar(24)"`
	RazorpayOrderID *string `json:"razorpayOrderId,omitempty" gorm:"uniqueIndex;type:varchar(64)"`

	TrackingNumber    string     `json:"trackingNumber"`
	CarrierName       string     `json:"carrierName"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
	Notes             string     `json:"notes"`

	Items    []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payments []Payment   `json:"payments,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	User     *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderItem snapshots one cart line at checkout. Price is the product rate
// at order time, decoupled from later catalog changes.
type OrderItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string    `json:"orderId" gorm:"index;type:varchar(36)"`
	ProductID string    `json:"productId" gorm:"type:varchar(36)"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderTracking is the append-only log of order stage changes. It is the
// source of truth for per-stage timestamps; Order.Status only carries the
// current state.
type OrderTracking struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string    `json:"orderId" gorm:"index;type:varchar(36)"`
	Stage     string    `json:"stage" gorm:"type:varchar(24)"`
	Status    string    `json:"status" gorm:"type:varchar(24)"`
	Notes     string    `json:"notes"`
	UpdatedBy string    `json:"updatedBy" gorm:"type:varchar(36)"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName keeps the table name aligned with the persisted schema.
func (OrderTracking) TableName() string {
	return "order_tracking"
}

// TrackingStage is one row of the client-facing progress tracker.
// Completed derives from the current status's index in ShipmentStages, so
// clients never re-derive stage order themselves.
type TrackingStage struct {
	Stage     string     `json:"stage"`
	Completed bool       `json:"completed"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// TrackingView is the owner-scoped tracking response for one order.
type TrackingView struct {
	OrderID           string          `json:"orderId"`
	OrderNumber       string          `json:"orderNumber"`
	Status            string          `json:"status"`
	TrackingNumber    string          `json:"trackingNumber"`
	CarrierName       string          `json:"carrierName"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
	Notes             string          `json:"notes"`
	Stages            []TrackingStage `json:"stages"`
}
