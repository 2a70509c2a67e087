package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sweetloaf/bakeshop/services/cart/internal/models"
	"github.com/sweetloaf/bakeshop/services/cart/internal/pricing"
	"github.com/sweetloaf/bakeshop/services/cart/internal/repo"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

type CartService struct {
	Repo  *repo.GormRepo
	Rules pricing.Rules
}

func (h *CartService) GetCart(ctx context.Context, userID uuid.UUID) ([]models.CartItem, pricing.Totals, error) {
	items, err := h.Repo.GetCart(ctx, userID)
	if err != nil {
		return nil, pricing.Totals{}, err
	}
	return items, h.totals(items), nil
}

func (h *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*models.CartItem, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("product_id required: %w", ErrValidation)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be >= 1: %w", ErrValidation)
	}

	if _, err := h.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("unknown product %s: %w", productID, ErrValidation)
		}
		return nil, err
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  uint(quantity),
	}
	if err := h.Repo.AddItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// SetQuantity replaces a line's quantity. Zero removes the line; the second
// return value reports whether that happened.
func (h *CartService) SetQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int) (*models.CartItem, bool, error) {
	if quantity < 0 {
		return nil, false, fmt.Errorf("quantity must be >= 0: %w", ErrValidation)
	}
	if quantity == 0 {
		return nil, true, h.RemoveItem(ctx, userID, lineID)
	}

	item, err := h.Repo.SetQuantity(ctx, userID, lineID, uint(quantity))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("line %s: %w", lineID, ErrNotFound)
	}
	if err != nil {
		return nil, false, err
	}
	return item, false, nil
}

func (h *CartService) RemoveItem(ctx context.Context, userID, lineID uuid.UUID) error {
	return h.Repo.RemoveItem(ctx, userID, lineID)
}

func (h *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	return h.Repo.Clear(ctx, userID)
}

// Checkout returns the totals the customer confirms over the phone. An empty
// cart cannot be checked out.
func (h *CartService) Checkout(ctx context.Context, userID uuid.UUID) (pricing.Totals, error) {
	items, err := h.Repo.GetCart(ctx, userID)
	if err != nil {
		return pricing.Totals{}, err
	}
	if len(items) == 0 {
		return pricing.Totals{}, fmt.Errorf("cart is empty: %w", ErrValidation)
	}
	return h.totals(items), nil
}

func (h *CartService) totals(items []models.CartItem) pricing.Totals {
	lines := make([]pricing.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, pricing.Line{
			Price:    decimal.NewFromFloat(it.Product.Price),
			Discount: it.Product.Discount,
			Quantity: it.Quantity,
		})
	}
	rules := h.Rules
	if rules.TaxRate.IsZero() && rules.DeliveryFee.IsZero() && rules.FreeDeliveryOver.IsZero() {
		rules = pricing.DefaultRules()
	}
	return pricing.Compute(lines, rules)
}
