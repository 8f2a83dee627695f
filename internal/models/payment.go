package models

import "time"

// Payment statuses.
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusSuccess = "SUCCESS"
	PaymentStatusFailed  = "FAILED"
)

// Payment methods recorded on verified payments.
const (
	PaymentMethodRazorpay = "RAZORPAY"
)

// Payment records a verified gateway payment. The unique OrderID index
// makes verification idempotent: a replayed callback hits a duplicate-key
// error instead of double-crediting the order.
type Payment struct {
	ID                string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID           string    `json:"orderId" gorm:"uniqueIndex;type:varchar(36)"`
	UserID            string    `json:"userId" gorm:"index;type:varchar(36)"`
	PaymentMethod     string    `json:"paymentMethod" gorm:"type:varchar(24)"`
	Amount            float64   `json:"amount"`
	Status            string    `json:"status" gorm:"type:varchar(16)"`
	ProviderPaymentID string    `json:"providerPaymentId" gorm:"type:varchar(64)"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
