// Package pricing derives cart totals. Quote is a pure function of the cart
// rows and a catalog snapshot: same input, same output, no hidden state.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/feirafresca/storefront/internal/models"
)

// Orders above the threshold ship for free, everything else pays the flat
// fee. The boundary is strict: a subtotal of exactly 50.00 still pays.
var (
	freeShippingThreshold = decimal.NewFromInt(50)
	shippingFee           = decimal.NewFromInt(10)
)

type Line struct {
	Product   models.Product
	Quantity  int
	LineTotal decimal.Decimal
}

type Quote struct {
	Lines        []Line
	Subtotal     decimal.Decimal
	Shipping     decimal.Decimal
	Total        decimal.Decimal
	FreeShipping bool
	TotalItems   int
}

// Calculate joins cart rows against the catalog snapshot. Rows whose product
// id does not resolve are dropped silently; the catalog is static so that
// can only happen with a stale cart.
func Calculate(items []models.CartItem, products map[string]models.Product) Quote {
	q := Quote{Subtotal: decimal.Zero}

	for _, item := range items {
		p, ok := products[item.ProductID]
		if !ok {
			continue
		}
		lineTotal := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		q.Lines = append(q.Lines, Line{Product: p, Quantity: item.Quantity, LineTotal: lineTotal})
		q.Subtotal = q.Subtotal.Add(lineTotal)
		q.TotalItems += item.Quantity
	}

	if q.Subtotal.GreaterThan(freeShippingThreshold) {
		q.Shipping = decimal.Zero
		q.FreeShipping = true
	} else {
		q.Shipping = shippingFee
	}
	q.Total = q.Subtotal.Add(q.Shipping)
	return q
}

// FormatBRL renders a monetary value the way the storefront shows it:
// a literal "R$ " prefix and two decimals.
func FormatBRL(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}
