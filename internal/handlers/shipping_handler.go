package handlers

import (
	"log"
	"time"

	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ShippingHandler handles tracking reads and the admin fulfillment flow.
type ShippingHandler struct {
	service  *services.ShippingService
	validate *validator.Validate
}

// NewShippingHandler creates a new ShippingHandler.
func NewShippingHandler(service *services.ShippingService) *ShippingHandler {
	return &ShippingHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the owner-scoped tracking route.
func (h *ShippingHandler) RegisterRoutes(router fiber.Router) {
	shippingRoutes := router.Group("/shipping")
	shippingRoutes.Get("/tracking/:orderId", h.HandleGetTracking)
}

// RegisterAdminRoutes registers the fulfillment routes on an admin-gated
// router.
func (h *ShippingHandler) RegisterAdminRoutes(router fiber.Router) {
	shippingRoutes := router.Group("/shipping")
	shippingRoutes.Get("/orders/confirmed", h.HandleListConfirmedOrders)
	shippingRoutes.Put("/orders/:orderId/stage", h.HandleAdvanceStage)
	shippingRoutes.Put("/orders/:orderId/cancel", h.HandleCancelOrder)
}

// HandleGetTracking returns the caller's progress tracker for an order.
func (h *ShippingHandler) HandleGetTracking(c *fiber.Ctx) error {
	view, err := h.service.GetTrackingView(c.Params("orderId"), callerID(c))
	if err != nil {
		log.Printf("Error getting tracking for order %s: %v", c.Params("orderId"), err)
		return failFromError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"tracking": view,
	})
}

// HandleListConfirmedOrders returns the fulfillment queue.
func (h *ShippingHandler) HandleListConfirmedOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListConfirmedOrders()
	if err != nil {
		log.Printf("Error listing confirmed orders: %v", err)
		return failFromError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}

// AdvanceStageRequest represents the stage transition body.
type AdvanceStageRequest struct {
	Stage             string     `json:"stage" validate:"required"`
	TrackingNumber    string     `json:"trackingNumber"`
	CarrierName       string     `json:"carrierName"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
	Notes             string     `json:"notes"`
}

// HandleAdvanceStage moves an order forward one or more stages.
func (h *ShippingHandler) HandleAdvanceStage(c *fiber.Ctx) error {
	var req AdvanceStageRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing stage update request body: %v", err)
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	order, err := h.service.AdvanceStage(c.Params("orderId"), callerID(c), services.StageRequest{
		Stage:             req.Stage,
		TrackingNumber:    req.TrackingNumber,
		CarrierName:       req.CarrierName,
		EstimatedDelivery: req.EstimatedDelivery,
		Notes:             req.Notes,
	})
	if err != nil {
		log.Printf("Error advancing order %s to %s: %v", c.Params("orderId"), req.Stage, err)
		return failFromError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

// CancelOrderRequest represents the cancel body.
type CancelOrderRequest struct {
	Notes string `json:"notes"`
}

// HandleCancelOrder moves an order to CANCELLED.
func (h *ShippingHandler) HandleCancelOrder(c *fiber.Ctx) error {
	var req CancelOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cancel request body: %v", err)
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	order, err := h.service.CancelOrder(c.Params("orderId"), callerID(c), req.Notes)
	if err != nil {
		log.Printf("Error cancelling order %s: %v", c.Params("orderId"), err)
		return failFromError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}
