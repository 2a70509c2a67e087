package transport

import (
	"github.com/google/uuid"

	"github.com/sweetloaf/bakeshop/services/cart/internal/models"
	"github.com/sweetloaf/bakeshop/services/cart/internal/pricing"
)

type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	// Quantity defaults to 1 when omitted.
	Quantity *int `json:"quantity"`
}

type SetQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

type TotalsResponse struct {
	Subtotal    string `json:"subtotal"`
	DeliveryFee string `json:"delivery_fee"`
	Tax         string `json:"tax"`
	Total       string `json:"total"`
	ItemCount   uint   `json:"item_count"`
}

// NewTotalsResponse rounds once, at the presentation boundary.
func NewTotalsResponse(t pricing.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:    t.Subtotal.StringFixed(2),
		DeliveryFee: t.DeliveryFee.StringFixed(2),
		Tax:         t.Tax.StringFixed(2),
		Total:       t.Total.StringFixed(2),
		ItemCount:   t.ItemCount,
	}
}

type CartResponse struct {
	Items  []models.CartItem `json:"items"`
	Totals TotalsResponse    `json:"totals"`
}

type CheckoutResponse struct {
	Totals     TotalsResponse `json:"totals"`
	OrderPhone string         `json:"order_phone"`
	Message    string         `json:"message"`
}
