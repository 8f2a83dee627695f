package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPaymentRepository is a GORM implementation of PaymentRepository.
type GORMPaymentRepository struct {
	db *gorm.DB
}

// NewGORMPaymentRepository creates a new instance of GORMPaymentRepository.
func NewGORMPaymentRepository(db *gorm.DB) *GORMPaymentRepository {
	return &GORMPaymentRepository{
		db: db,
	}
}

// RecordSuccess applies the payment confirmation transactionally. The
// payment insert goes first so the unique order_id index aborts a replayed
// confirmation before the order or cart is touched.
func (r *GORMPaymentRepository) RecordSuccess(payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Order{}).Where("id = ?", payment.OrderID).Updates(map[string]interface{}{
			"status":         models.OrderStatusConfirmed,
			"payment_method": payment.PaymentMethod,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		entry := models.OrderTracking{
			ID:        uuid.New().String(),
			OrderID:   payment.OrderID,
			Stage:     models.OrderStatusConfirmed,
			Status:    models.OrderStatusConfirmed,
			Notes:     "payment verified",
			UpdatedBy: payment.UserID,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		// Idempotent when the cart is already empty.
		return tx.Delete(&models.CartLine{}, "user_id = ?", payment.UserID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("payment for order %s: %w", payment.OrderID, ErrDuplicateKey)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("order with ID %s: %w", payment.OrderID, ErrNotFound)
		}
		return fmt.Errorf("failed to record payment for order %s: %w", payment.OrderID, err)
	}
	return nil
}

// GetByOrderID retrieves the payment recorded for an order.
func (r *GORMPaymentRepository) GetByOrderID(orderID string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.First(&payment, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment for order %s: %w", orderID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get payment for order %s: %w", orderID, err)
	}
	return &payment, nil
}
