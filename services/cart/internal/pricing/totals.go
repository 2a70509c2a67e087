// Package pricing computes cart totals. All arithmetic is done on exact
// decimals; rounding to two places happens only when rendering a response.
package pricing

import "github.com/shopspring/decimal"

type Rules struct {
	// FreeDeliveryOver is exclusive: a subtotal of exactly this amount still
	// pays the delivery fee.
	FreeDeliveryOver decimal.Decimal
	DeliveryFee      decimal.Decimal
	TaxRate          decimal.Decimal
}

func DefaultRules() Rules {
	return Rules{
		FreeDeliveryOver: decimal.RequireFromString("50"),
		DeliveryFee:      decimal.RequireFromString("3.99"),
		TaxRate:          decimal.RequireFromString("0.08"),
	}
}

type Line struct {
	Price    decimal.Decimal
	Discount *int
	Quantity uint
}

type Totals struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
	ItemCount   uint
}

// UnitPrice applies the percentage discount, if any, to the list price.
func UnitPrice(price decimal.Decimal, discount *int) decimal.Decimal {
	if discount == nil || *discount == 0 {
		return price
	}
	pct := decimal.NewFromInt(int64(*discount)).Div(decimal.NewFromInt(100))
	return price.Mul(decimal.NewFromInt(1).Sub(pct))
}

func Compute(lines []Line, r Rules) Totals {
	subtotal := decimal.Zero
	var count uint
	for _, ln := range lines {
		qty := decimal.NewFromInt(int64(ln.Quantity))
		subtotal = subtotal.Add(UnitPrice(ln.Price, ln.Discount).Mul(qty))
		count += ln.Quantity
	}

	fee := r.DeliveryFee
	if subtotal.GreaterThan(r.FreeDeliveryOver) {
		fee = decimal.Zero
	}

	tax := subtotal.Mul(r.TaxRate)

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal.Add(fee).Add(tax),
		ItemCount:   count,
	}
}
