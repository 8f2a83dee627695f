package handlers

import (
	"log"

	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the caller's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes. The clear route registers
// before the productId route so "clear" never binds as a product id.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Post("/", h.HandleAddLine)
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Put("/:productId", h.HandleSetQuantity)
	cartRoutes.Delete("/clear", h.HandleClear)
	cartRoutes.Delete("/:productId", h.HandleRemoveLine)
}

// AddLineRequest represents the add-to-cart body.
type AddLineRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

// HandleAddLine adds or increments a cart line.
func (h *CartHandler) HandleAddLine(c *fiber.Ctx) error {
	var req AddLineRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-to-cart request body: %v", err)
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	item, err := h.service.AddLine(callerID(c), req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("Error adding product %s to cart: %v", req.ProductID, err)
		return failFromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"item":    item,
	})
}

// HandleGetCart returns the cart with computed totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	summary, err := h.service.ComputeTotals(callerID(c))
	if err != nil {
		log.Printf("Error computing cart totals: %v", err)
		return failFromError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"items":       summary.Items,
		"totalAmount": summary.TotalAmount,
		"totalItems":  summary.TotalItems,
		"itemCount":   summary.ItemCount,
		"warnings":    summary.Warnings,
	})
}

// SetQuantityRequest represents the quantity-update body.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleSetQuantity updates a line's quantity; at or below zero removes
// the line.
func (h *CartHandler) HandleSetQuantity(c *fiber.Ctx) error {
	var req SetQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart update request body: %v", err)
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.SetQuantity(callerID(c), c.Params("productId"), req.Quantity); err != nil {
		log.Printf("Error updating cart line for product %s: %v", c.Params("productId"), err)
		return failFromError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
	})
}

// HandleRemoveLine removes a cart line.
func (h *CartHandler) HandleRemoveLine(c *fiber.Ctx) error {
	if err := h.service.RemoveLine(callerID(c), c.Params("productId")); err != nil {
		log.Printf("Error removing cart line for product %s: %v", c.Params("productId"), err)
		return failFromError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
	})
}

// HandleClear empties the cart.
func (h *CartHandler) HandleClear(c *fiber.Ctx) error {
	if err := h.service.Clear(callerID(c)); err != nil {
		log.Printf("Error clearing cart: %v", err)
		return failFromError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
	})
}
