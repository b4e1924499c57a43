// internal/domain/pricing/resolver.go
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ResolveUnitPrice computes the effective unit price of a product for a
// client tier: base price reduced by the list's discount percentage, rounded
// half-up to currency precision (2 decimal places).
//
// Pricing must never fail a cart or order operation, so every malformed
// input degrades to the base price instead of erroring: a nil, inactive or
// out-of-range list is treated as 0% discount. A negative base price
// resolves to zero. The result is always in [0, basePrice].
//
// Promotional prices are absolute and never pass through here; the list
// discount applies to standalone product lines only.
func ResolveUnitPrice(basePrice decimal.Decimal, list *PriceList) decimal.Decimal {
	if basePrice.Sign() < 0 {
		return decimal.Zero
	}
	if !list.Applicable() {
		return basePrice.Round(2)
	}

	pct := list.DiscountPercent
	if pct.Sign() < 0 || pct.GreaterThan(hundred) {
		return basePrice.Round(2)
	}

	factor := decimal.NewFromInt(1).Sub(pct.Div(hundred))
	return basePrice.Mul(factor).Round(2)
}
