package services

import (
	"errors"
	"fmt"
	"math"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CartService handles cart accumulation and total computation.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddLine adds quantity units of a product to the user's cart. A repeat
// add increments the existing line atomically instead of inserting a
// duplicate row. Quantity 0 means 1; negative quantities are rejected.
func (s *CartService) AddLine(userID, productID string, quantity int) (*models.CartItemView, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity == 0 {
		quantity = 1
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	line, err := s.cartRepo.GetLine(userID, productID)
	switch {
	case err == nil:
		if err := s.cartRepo.IncrementQuantity(line.ID, quantity); err != nil {
			return nil, err
		}
		line.Quantity += quantity
	case errors.Is(err, repositories.ErrNotFound):
		line = &models.CartLine{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := s.cartRepo.Create(line); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return lineView(line, product), nil
}

// RemoveLine deletes the user's cart line for a product.
func (s *CartService) RemoveLine(userID, productID string) error {
	return s.cartRepo.DeleteByProduct(userID, productID)
}

// SetQuantity overwrites a line's quantity. A quantity at or below zero
// removes the line; a zero or negative quantity is never stored.
func (s *CartService) SetQuantity(userID, productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveLine(userID, productID)
	}
	line, err := s.cartRepo.GetLine(userID, productID)
	if err != nil {
		return err
	}
	return s.cartRepo.SetQuantity(line.ID, quantity)
}

// Clear empties the user's cart.
func (s *CartService) Clear(userID string) error {
	return s.cartRepo.Clear(userID)
}

// ComputeTotals reads the cart with joined products and sums it up. A line
// whose product no longer resolves is reported as a warning and counts as
// zero; one dangling row must not fail the whole read.
func (s *CartService) ComputeTotals(userID string) (*models.CartSummary, error) {
	lines, err := s.cartRepo.GetLines(userID)
	if err != nil {
		return nil, err
	}

	summary := &models.CartSummary{
		Items: make([]models.CartItemView, 0, len(lines)),
	}
	var total float64
	for _, line := range lines {
		if line.Product == nil {
			summary.Warnings = append(summary.Warnings,
				fmt.Sprintf("cart line %s references a missing product %s and was skipped", line.ID, line.ProductID))
			continue
		}
		summary.Items = append(summary.Items, *lineView(&line, line.Product))
		total += line.Product.Rate * float64(line.Quantity)
		summary.TotalItems += line.Quantity
		summary.ItemCount++
	}
	summary.TotalAmount = round2(total)
	return summary, nil
}

func lineView(line *models.CartLine, product *models.Product) *models.CartItemView {
	return &models.CartItemView{
		LineID:    line.ID,
		ProductID: product.ID,
		Name:      product.Name,
		Brand:     product.Brand,
		ImageURL:  product.ImageURL,
		Rate:      product.Rate,
		Quantity:  line.Quantity,
		Subtotal:  round2(product.Rate * float64(line.Quantity)),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
