// Package pricing computes line and aggregate totals for an estimate.
//
// All functions are pure. Accumulation stays in full float64 precision;
// rounding to 2 digits happens once, at the presentation boundary, via
// Round2. Currency is CHF throughout.
package pricing

import (
	"math"

	"atelier_auto/internal/domain/entities"
)

// VATRate is the fixed VAT applied to estimate subtotals.
const VATRate = 0.10

// ItemTotal returns the unrounded total of a single line item.
//
//   - part:     unit price x quantity
//   - labor:    unit price, or unit price x minutes/60 when billed by time;
//     a percentage discount then applies to the base
//   - upcoming: always 0, whatever the other fields hold
func ItemTotal(it entities.LineItem) float64 {
	switch it.Kind {
	case entities.ItemKindPart:
		if it.Quantity == nil {
			return 0
		}
		return it.UnitPrice * float64(*it.Quantity)
	case entities.ItemKindLabor:
		base := it.UnitPrice
		if it.CalculateByTime && it.Quantity != nil {
			base = it.UnitPrice * float64(*it.Quantity) / 60
		}
		if it.Discount != nil {
			base *= 1 - float64(*it.Discount)/100
		}
		return base
	default:
		return 0
	}
}

// Subtotal sums ItemTotal over the priced rows. Upcoming rows never
// contribute.
func Subtotal(items []entities.LineItem) float64 {
	var sum float64
	for _, it := range items {
		if it.Kind == entities.ItemKindUpcoming {
			continue
		}
		sum += ItemTotal(it)
	}
	return sum
}

// VAT returns the tax amount for a subtotal at the fixed rate.
func VAT(subtotal float64) float64 {
	return subtotal * VATRate
}

// GrandTotal is subtotal plus tax.
func GrandTotal(subtotal, vat float64) float64 {
	return subtotal + vat
}

// Round2 rounds a monetary amount to 2 fraction digits. Call it once per
// displayed figure, never on intermediate sums.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
