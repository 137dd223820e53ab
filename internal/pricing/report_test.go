package pricing

import (
	"testing"

	"github.com/btoksoz/tatli-panel/internal/model"
)

func reportFixture() ([]model.Order, map[string]model.Product, map[string]model.Customer) {
	products := model.IndexProducts([]model.Product{
		{ID: "p1", Price: 10},
		{ID: "p2", Price: 4.5},
	})
	customers := model.IndexCustomers([]model.Customer{
		{ID: "own1", Name: "Ayse", Type: model.CustomerOwn},
		{ID: "shop1", Name: "Pastane", Type: model.CustomerShop},
	})
	orders := []model.Order{
		{ID: "o1", Date: "2025-01-01", CustomerID: "own1", Status: model.StatusPending,
			Items: []model.OrderItem{{ProductID: "p1", Qty: 2}}},
		{ID: "o2", Date: "2025-01-01", CustomerID: "shop1", Status: model.StatusDelivered,
			Items: []model.OrderItem{{ProductID: "p2", Qty: 4}}},
		{ID: "o3", Date: "2025-01-01", CustomerID: "missing", Status: model.StatusReady,
			Items: []model.OrderItem{{ProductID: "p1", Qty: 1}}},
		{ID: "o4", Date: "2025-01-02", CustomerID: "own1", Status: model.StatusPending,
			Items: []model.OrderItem{{ProductID: "p1", Qty: 9}}},
	}
	return orders, products, customers
}

func TestAggregateBuckets(t *testing.T) {
	orders, products, customers := reportFixture()

	got := Aggregate(orders, "2025-01-01", products, customers)

	// gross covers every order on the date, delivered or not, orphaned or not
	if !approx(got.Gross, 20+18+10) {
		t.Fatalf("gross: got %v", got.Gross)
	}
	// own bucket is the commission of the own-customer order
	if !approx(got.Own, 20*0.20) {
		t.Fatalf("own: got %v", got.Own)
	}
	// shop bucket is the full subtotal of the shop-customer order
	if !approx(got.Shop, 18) {
		t.Fatalf("shop: got %v", got.Shop)
	}
}

func TestAggregateDateIsExactStringMatch(t *testing.T) {
	orders, products, customers := reportFixture()

	got := Aggregate(orders, "2025-1-1", products, customers)
	if got.Gross != 0 || got.Own != 0 || got.Shop != 0 {
		t.Fatalf("no normalization expected, got %+v", got)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	orders, products, customers := reportFixture()

	want := Aggregate(orders, "2025-01-01", products, customers)

	permuted := []model.Order{orders[3], orders[1], orders[0], orders[2]}
	got := Aggregate(permuted, "2025-01-01", products, customers)

	if !approx(got.Gross, want.Gross) || !approx(got.Own, want.Own) || !approx(got.Shop, want.Shop) {
		t.Fatalf("permutation changed totals: %+v vs %+v", got, want)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.0},
		{4.849999999, 4.85},
		{-2.675, -2.67},
		{10, 10},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v): got %v, want %v", tc.in, got, tc.want)
		}
	}
}
