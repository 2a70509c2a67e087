package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sweetloaf/bakeshop/services/cart/internal/models"
)

func (r *GormRepo) GetCart(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	var prod models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", productID).First(&prod).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

// AddItem merges onto an existing line for the same product or creates a new
// one, inside a single transaction so a failed add leaves the cart untouched.
func (r *GormRepo) AddItem(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Preload("Product").
				Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
				First(item).Error
		}

		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return tx.Preload("Product").Where("id = ?", item.ID).First(item).Error
	})
}

func (r *GormRepo) SetQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("id = ? AND user_id = ?", lineID, userID).
			Update("quantity", quantity)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Preload("Product").Where("id = ?", lineID).First(&item).Error
	}); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveItem is idempotent: deleting an absent line is not an error.
func (r *GormRepo) RemoveItem(ctx context.Context, userID, lineID uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", lineID, userID).
		Delete(&models.CartItem{}).Error
}

func (r *GormRepo) Clear(ctx context.Context, userID uuid.UUID) error {
	return r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
