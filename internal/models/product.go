package models

import (
	"time"

	"gorm.io/datatypes"
)

// Product represents a catalog entry. Rate is the current unit price;
// order items snapshot it at checkout and never follow later changes.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string         `json:"name" validate:"required,min=2,max=100"`
	Brand       string         `json:"brand" validate:"omitempty,max=100"`
	Description string         `json:"description" validate:"omitempty,max=500"`
	ImageURL    string         `json:"imageUrl" validate:"omitempty,url"`
	Images      datatypes.JSON `json:"images,omitempty"`
	Quantity    int            `json:"quantity" validate:"gte=0"`
	Rate        float64        `json:"rate" validate:"required,gt=0"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
