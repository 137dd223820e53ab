package pricing

import (
	"math"

	"github.com/btoksoz/tatli-panel/internal/model"
)

// Totals is the day-end report: gross revenue across all orders on the
// date, retained commission from own customers, and the payout owed to
// consignment shops.
type Totals struct {
	Gross float64 `json:"gross"`
	Own   float64 `json:"own"`
	Shop  float64 `json:"shop"`
}

// Aggregate folds order summaries for a single date. Dates match by exact
// string equality and no status filtering applies. Orders whose customer
// is missing contribute to gross only. The fold is commutative, so input
// ordering cannot change the totals beyond float rounding noise.
func Aggregate(orders []model.Order, date string, products map[string]model.Product, customers map[string]model.Customer) Totals {
	var t Totals
	for _, o := range orders {
		if o.Date != date {
			continue
		}
		var customer *model.Customer
		if c, ok := customers[o.CustomerID]; ok {
			customer = &c
		}
		s := Summarize(o, products, customer)
		t.Gross += s.Subtotal
		if customer == nil {
			continue
		}
		switch customer.Type {
		case model.CustomerOwn:
			t.Own += s.Commission
		case model.CustomerShop:
			t.Shop += s.PayoutToShop
		}
	}
	return t
}

// Round2 rounds a monetary value to two decimals for presentation
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
