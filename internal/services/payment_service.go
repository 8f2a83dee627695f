package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"
	"storefront/pkg/razorpay"
)

// PaymentGateway is the slice of the Razorpay client the payment workflow
// needs; tests substitute a fake.
type PaymentGateway interface {
	KeyID() string
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*razorpay.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// GatewayCheckout is what a client needs to open the payment widget for an
// order.
type GatewayCheckout struct {
	KeyID          string `json:"keyId"`
	GatewayOrderID string `json:"gatewayOrderId"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	OrderID        string `json:"orderId"`
	OrderNumber    string `json:"orderNumber"`
}

// PaymentService drives gateway order creation and payment verification.
type PaymentService struct {
	orderRepo   repositories.OrderRepository
	paymentRepo repositories.PaymentRepository
	gateway     PaymentGateway
	mqClient    *rabbitmq.Client
}

// NewPaymentService creates a new PaymentService. mqClient may be nil.
func NewPaymentService(orderRepo repositories.OrderRepository, paymentRepo repositories.PaymentRepository, gateway PaymentGateway, mqClient *rabbitmq.Client) *PaymentService {
	return &PaymentService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		mqClient:    mqClient,
	}
}

// CreateGatewayOrder creates the remote gateway order for one of the
// caller's orders. The amount goes over in the smallest currency unit and
// the order number doubles as the gateway receipt. The returned gateway
// order id is stored on the order exactly once.
func (s *PaymentService) CreateGatewayOrder(ctx context.Context, userID, orderID string) (*GatewayCheckout, error) {
	order, err := s.orderRepo.GetByIDForUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order.RazorpayOrderID != nil {
		return nil, ErrGatewayOrderExists
	}

	amount := int64(math.Round(order.TotalAmount * 100))
	gatewayOrder, err := s.gateway.CreateOrder(ctx, amount, order.Currency, order.OrderNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	if err := s.orderRepo.SetGatewayOrderID(order.ID, gatewayOrder.ID); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrGatewayOrderExists
		}
		return nil, err
	}

	return &GatewayCheckout{
		KeyID:          s.gateway.KeyID(),
		GatewayOrderID: gatewayOrder.ID,
		Amount:         gatewayOrder.Amount,
		Currency:       gatewayOrder.Currency,
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
	}, nil
}

// VerifyPayment checks the client-submitted payment confirmation. The
// signature is verified before anything is read or written; a mismatch
// rejects the request with no state touched. On a match the confirmation
// commits atomically, and a replayed confirmation for an already-paid
// order is a no-op success rather than a second payment row.
func (s *PaymentService) VerifyPayment(userID, gatewayOrderID, gatewayPaymentID, signature string) (*models.Order, *models.Payment, error) {
	if !s.gateway.VerifySignature(gatewayOrderID, gatewayPaymentID, signature) {
		return nil, nil, ErrInvalidSignature
	}

	order, err := s.orderRepo.GetByGatewayOrderID(gatewayOrderID, userID)
	if err != nil {
		return nil, nil, err
	}

	payment := &models.Payment{
		OrderID:           order.ID,
		UserID:            userID,
		PaymentMethod:     models.PaymentMethodRazorpay,
		Amount:            order.TotalAmount,
		Status:            models.PaymentStatusSuccess,
		ProviderPaymentID: gatewayPaymentID,
	}

	if err := s.paymentRepo.RecordSuccess(payment); err != nil {
		if !errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, nil, err
		}
		// Replayed confirmation; return the payment already on record.
		existing, getErr := s.paymentRepo.GetByOrderID(order.ID)
		if getErr != nil {
			return nil, nil, getErr
		}
		order.Status = models.OrderStatusConfirmed
		order.PaymentMethod = existing.PaymentMethod
		return order, existing, nil
	}

	order.Status = models.OrderStatusConfirmed
	order.PaymentMethod = payment.PaymentMethod

	if s.mqClient != nil {
		if err := s.mqClient.PublishOrderEvent("payment.confirmed", map[string]interface{}{
			"orderID":   order.ID,
			"paymentID": payment.ID,
			"userID":    userID,
			"amount":    payment.Amount,
		}); err != nil {
			log.Printf("Warning: Failed to publish payment confirmed event for order %s: %v", order.ID, err)
		}
	}

	return order, payment, nil
}
