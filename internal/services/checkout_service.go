package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"
)

// Attempts to allocate a unique order number before giving up. The number
// is timestamp + random suffix, so a collision needs two checkouts in the
// same millisecond drawing the same suffix.
const orderNumberAttempts = 3

// CheckoutService converts a cart snapshot into a persisted order.
type CheckoutService struct {
	orderRepo repositories.OrderRepository
	cart      *CartService
	mqClient  *rabbitmq.Client
}

// NewCheckoutService creates a new CheckoutService. mqClient may be nil;
// event publication is then skipped.
func NewCheckoutService(orderRepo repositories.OrderRepository, cart *CartService, mqClient *rabbitmq.Client) *CheckoutService {
	return &CheckoutService{
		orderRepo: orderRepo,
		cart:      cart,
		mqClient:  mqClient,
	}
}

// CreateOrderFromCart snapshots the user's cart into an order. The order,
// its items (with prices frozen at the current rate), and the cart clear
// commit in one transaction. The returned summary echoes the cart as it
// was charged.
func (s *CheckoutService) CreateOrderFromCart(userID string) (*models.Order, *models.CartSummary, error) {
	summary, err := s.cart.ComputeTotals(userID)
	if err != nil {
		return nil, nil, err
	}
	if summary.ItemCount == 0 {
		return nil, nil, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(summary.Items))
	for _, it := range summary.Items {
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Rate,
		})
	}

	var order *models.Order
	for attempt := 0; ; attempt++ {
		order = &models.Order{
			UserID:      userID,
			OrderNumber: generateOrderNumber(),
			Status:      models.OrderStatusPending,
			TotalAmount: summary.TotalAmount,
			Currency:    "INR",
			Items:       items,
		}
		err = s.orderRepo.CreateFromCart(order)
		if err == nil {
			break
		}
		if !errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, nil, err
		}
		if attempt+1 >= orderNumberAttempts {
			return nil, nil, fmt.Errorf("failed to allocate a unique order number: %w", err)
		}
		log.Printf("Order number %s collided, retrying", order.OrderNumber)
	}

	if s.mqClient != nil {
		if err := s.mqClient.PublishOrderEvent("order.created", map[string]interface{}{
			"orderID":     order.ID,
			"orderNumber": order.OrderNumber,
			"userID":      order.UserID,
			"status":      order.Status,
			"total":       order.TotalAmount,
		}); err != nil {
			log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	return order, summary, nil
}

// GetOrdersForUser returns the user's order history, newest first.
func (s *CheckoutService) GetOrdersForUser(userID string) ([]models.Order, error) {
	return s.orderRepo.ListByUser(userID)
}

// GetOrderForUser returns one of the user's orders with its items.
func (s *CheckoutService) GetOrderForUser(orderID, userID string) (*models.Order, error) {
	return s.orderRepo.GetByIDForUser(orderID, userID)
}

// generateOrderNumber builds a human-readable order number. Uniqueness is
// guaranteed by the database constraint, not by this format.
func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%04d", time.Now().UnixMilli(), rand.Intn(10000))
}
