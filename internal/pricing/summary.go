// Package pricing derives per-order financial splits and day-level report
// totals. Everything here is a pure function of its inputs; callers pass
// the current collections explicitly and no result is cached.
package pricing

import "github.com/btoksoz/tatli-panel/internal/model"

// Summary is the financial split of a single order. Values carry full
// floating-point precision; two-decimal rounding happens at presentation.
type Summary struct {
	Subtotal     float64 `json:"subtotal"`
	Commission   float64 `json:"commission"`
	PayoutToShop float64 `json:"payoutToShop"`
}

// Summarize computes the split for one order. Items referencing a missing
// product price at zero rather than erroring. Commission applies only to
// own-type customers, at their stored rate (default 20%); a missing or
// deleted customer is treated as non-own, so commission is zero and the
// payout equals the full subtotal.
func Summarize(o model.Order, products map[string]model.Product, customer *model.Customer) Summary {
	var subtotal float64
	for _, it := range o.Items {
		p, ok := products[it.ProductID]
		if !ok {
			continue
		}
		subtotal += p.Price * float64(it.Qty)
	}

	var rate float64
	if customer != nil && customer.Type == model.CustomerOwn {
		rate = customer.Commission.Percent() / 100
	}
	commission := subtotal * rate

	return Summary{
		Subtotal:     subtotal,
		Commission:   commission,
		PayoutToShop: subtotal - commission,
	}
}
