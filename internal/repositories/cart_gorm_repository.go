package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetLines retrieves all cart lines for a user with products preloaded.
func (r *GORMCartRepository) GetLines(userID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := r.db.Preload("Product").Where("user_id = ?", userID).Order("created_at asc").Find(&lines).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart lines for user %s: %w", userID, err)
	}
	return lines, nil
}

// GetLine retrieves the user's cart line for a product.
func (r *GORMCartRepository) GetLine(userID, productID string) (*models.CartLine, error) {
	var line models.CartLine
	if err := r.db.First(&line, "user_id = ? AND product_id = ?", userID, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart line for product %s: %w", productID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart line for product %s: %w", productID, err)
	}
	return &line, nil
}

// Create inserts a new cart line.
func (r *GORMCartRepository) Create(line *models.CartLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	if err := r.db.Create(line).Error; err != nil {
		return fmt.Errorf("failed to create cart line: %w", err)
	}
	return nil
}

// IncrementQuantity bumps a line's quantity with an atomic in-database
// update, so two concurrent adds both land instead of one overwriting the
// other.
func (r *GORMCartRepository) IncrementQuantity(lineID string, delta int) error {
	res := r.db.Model(&models.CartLine{}).Where("id = ?", lineID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return fmt.Errorf("failed to increment cart line %s: %w", lineID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart line %s: %w", lineID, ErrNotFound)
	}
	return nil
}

// SetQuantity overwrites a line's stored quantity.
func (r *GORMCartRepository) SetQuantity(lineID string, quantity int) error {
	res := r.db.Model(&models.CartLine{}).Where("id = ?", lineID).Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to set quantity on cart line %s: %w", lineID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart line %s: %w", lineID, ErrNotFound)
	}
	return nil
}

// DeleteByProduct removes the user's line for a product.
func (r *GORMCartRepository) DeleteByProduct(userID, productID string) error {
	res := r.db.Delete(&models.CartLine{}, "user_id = ? AND product_id = ?", userID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart line for product %s: %w", productID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart line for product %s: %w", productID, ErrNotFound)
	}
	return nil
}

// Clear removes all cart lines for a user.
func (r *GORMCartRepository) Clear(userID string) error {
	if err := r.db.Delete(&models.CartLine{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}
