package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"   json:"id"`
	Name        string    `gorm:"not null"               json:"name"`
	Description string    `gorm:"not null"               json:"description"`
	Price       float64   `gorm:"not null"               json:"price"`
	Image       string    `json:"image"`
	Category    string    `gorm:"index;not null"         json:"category"`
	Bestseller  bool      `gorm:"default:false"          json:"bestseller"`
	Discount    *int      `json:"discount,omitempty"`
	CreatedAt   time.Time `gorm:"index"                  json:"created_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// CategoryAll is the pseudo-category that matches every product.
const CategoryAll = "All"

var Categories = []string{"Pastry", "Cake", "Brownie", "Muffin", "Cupcakes", "Healthy"}

func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
