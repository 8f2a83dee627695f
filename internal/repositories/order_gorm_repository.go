package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// CreateFromCart persists the order, its items, and the cart clear as one
// transaction. The cart is never left half-converted: either the order
// with every item exists and the cart is empty, or nothing changed.
func (r *GORMOrderRepository) CreateFromCart(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("User", "Payments", "Items.Product").Create(order).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.CartLine{}, "user_id = ?", order.UserID).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("order number %s: %w", order.OrderNumber, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves an order with its items.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetByIDForUser retrieves an order scoped to its owner.
func (r *GORMOrderRepository) GetByIDForUser(id, userID string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order %s for user %s: %w", id, userID, err)
	}
	return &order, nil
}

// GetByGatewayOrderID retrieves an order by its gateway order id, scoped to
// its owner.
func (r *GORMOrderRepository) GetByGatewayOrderID(gatewayOrderID, userID string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "razorpay_order_id = ? AND user_id = ?", gatewayOrderID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order for gateway order %s: %w", gatewayOrderID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order for gateway order %s: %w", gatewayOrderID, err)
	}
	return &order, nil
}

// SetGatewayOrderID stores the gateway order id on an order.
func (r *GORMOrderRepository) SetGatewayOrderID(orderID, gatewayOrderID string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", orderID).Update("razorpay_order_id", gatewayOrderID)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("gateway order %s: %w", gatewayOrderID, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to set gateway order id on order %s: %w", orderID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", orderID, ErrNotFound)
	}
	return nil
}

// ListByUser returns a user's orders, newest first, with items.
func (r *GORMOrderRepository) ListByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Where("user_id = ?", userID).
		Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// ListByStatuses returns orders in the given statuses with the joins the
// fulfillment queue needs: items+products, the owning user, and payments.
func (r *GORMOrderRepository) ListByStatuses(statuses []string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items.Product").Preload("User").Preload("Payments").
		Where("status IN ?", statuses).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders by status: %w", err)
	}
	return orders, nil
}

// ApplyStageUpdate sets the order's status, merges any supplied tracking
// fields, and appends the order_tracking entry, all in one transaction.
func (r *GORMOrderRepository) ApplyStageUpdate(orderID string, update StageUpdate) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		fields := map[string]interface{}{"status": update.Stage}
		if update.TrackingNumber != "" {
			fields["tracking_number"] = update.TrackingNumber
		}
		if update.CarrierName != "" {
			fields["carrier_name"] = update.CarrierName
		}
		if update.EstimatedDelivery != nil {
			fields["estimated_delivery"] = update.EstimatedDelivery
		}
		if update.Notes != "" {
			fields["notes"] = update.Notes
		}

		res := tx.Model(&models.Order{}).Where("id = ?", orderID).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		entry := models.OrderTracking{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			Stage:     update.Stage,
			Status:    update.Stage,
			Notes:     update.Notes,
			UpdatedBy: update.UpdatedBy,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("order with ID %s: %w", orderID, ErrNotFound)
		}
		return fmt.Errorf("failed to apply stage update on order %s: %w", orderID, err)
	}
	return nil
}

// GetTrackingLog returns the append-only stage history for an order,
// oldest first.
func (r *GORMOrderRepository) GetTrackingLog(orderID string) ([]models.OrderTracking, error) {
	var entries []models.OrderTracking
	if err := r.db.Where("order_id = ?", orderID).Order("created_at asc").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get tracking log for order %s: %w", orderID, err)
	}
	return entries, nil
}
