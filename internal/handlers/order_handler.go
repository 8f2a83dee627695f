package handlers

import (
	"log"

	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for checkout, order history, and the
// payment-gateway flow.
type OrderHandler struct {
	checkout *services.CheckoutService
	payments *services.PaymentService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(checkout *services.CheckoutService, payments *services.PaymentService) *OrderHandler {
	return &OrderHandler{
		checkout: checkout,
		payments: payments,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/create", h.HandleCreateOrder)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Post("/razorpay/create", h.HandleCreateGatewayOrder)
	orderRoutes.Post("/razorpay/verify", h.HandleVerifyPayment)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
}

// HandleCreateOrder converts the caller's cart into an order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	order, summary, err := h.checkout.CreateOrderFromCart(callerID(c))
	if err != nil {
		log.Printf("Error creating order from cart: %v", err)
		return failFromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"order":   order,
		"summary": summary,
	})
}

// HandleGetOrders returns the caller's order history, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.checkout.GetOrdersForUser(callerID(c))
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return failFromError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}

// HandleGetOrderByID returns one of the caller's orders.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.checkout.GetOrderForUser(c.Params("id"), callerID(c))
	if err != nil {
		log.Printf("Error getting order %s: %v", c.Params("id"), err)
		return failFromError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

// CreateGatewayOrderRequest represents the gateway order creation body.
type CreateGatewayOrderRequest struct {
	OrderID string `json:"orderId" validate:"required"`
}

// HandleCreateGatewayOrder creates the remote gateway order and returns
// what the client needs to open the checkout widget.
func (h *OrderHandler) HandleCreateGatewayOrder(c *fiber.Ctx) error {
	var req CreateGatewayOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing gateway order request body: %v", err)
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	checkout, err := h.payments.CreateGatewayOrder(c.Context(), callerID(c), req.OrderID)
	if err != nil {
		log.Printf("Error creating gateway order for order %s: %v", req.OrderID, err)
		return failFromError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"checkout": checkout,
	})
}

// VerifyPaymentRequest carries the client-submitted payment confirmation.
// Field names follow the gateway's checkout callback payload.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

// HandleVerifyPayment verifies a payment confirmation and confirms the
// order.
func (h *OrderHandler) HandleVerifyPayment(c *fiber.Ctx) error {
	var req VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment verification body: %v", err)
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	order, payment, err := h.payments.VerifyPayment(callerID(c), req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		log.Printf("Error verifying payment for gateway order %s: %v", req.RazorpayOrderID, err)
		return failFromError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
		"payment": payment,
	})
}
