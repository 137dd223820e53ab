package pricing

import (
	"math"
	"testing"

	"github.com/btoksoz/tatli-panel/internal/model"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testProducts() map[string]model.Product {
	return model.IndexProducts([]model.Product{
		{ID: "p1", Name: "Profiterol", Price: 10.5},
		{ID: "p2", Name: "Baklava", Price: 3.25},
	})
}

func TestSummarizeOwnCustomerDefaultRate(t *testing.T) {
	o := model.Order{Items: []model.OrderItem{
		{ProductID: "p1", Qty: 2},
		{ProductID: "p2", Qty: 1},
	}}
	c := &model.Customer{ID: "c1", Name: "Ayse", Type: model.CustomerOwn}

	s := Summarize(o, testProducts(), c)
	if s.Subtotal != 24.25 {
		t.Fatalf("subtotal: got %v", s.Subtotal)
	}
	if !approx(s.Commission, 24.25*0.20) {
		t.Fatalf("commission at default 20%%: got %v", s.Commission)
	}
	if !approx(s.PayoutToShop, s.Subtotal-s.Commission) {
		t.Fatalf("payout should be subtotal minus commission: got %v", s.PayoutToShop)
	}
}

func TestSummarizeOwnCustomerStoredRate(t *testing.T) {
	o := model.Order{Items: []model.OrderItem{{ProductID: "p1", Qty: 4}}}
	c := &model.Customer{
		ID:         "c1",
		Name:       "Ayse",
		Type:       model.CustomerOwn,
		Commission: &model.Commission{Value: 10, Set: true},
	}

	s := Summarize(o, testProducts(), c)
	if s.Subtotal != 42 {
		t.Fatalf("subtotal: got %v", s.Subtotal)
	}
	if !approx(s.Commission, 4.2) {
		t.Fatalf("commission at 10%%: got %v", s.Commission)
	}
}

func TestSummarizeShopCustomer(t *testing.T) {
	o := model.Order{Items: []model.OrderItem{{ProductID: "p2", Qty: 3}}}
	// a stored commission on a shop customer must be ignored
	c := &model.Customer{
		ID:         "c2",
		Name:       "Pastane",
		Type:       model.CustomerShop,
		Commission: &model.Commission{Value: 35, Set: true},
	}

	s := Summarize(o, testProducts(), c)
	if s.Commission != 0 {
		t.Fatalf("shop commission must be zero: got %v", s.Commission)
	}
	if s.PayoutToShop != s.Subtotal {
		t.Fatalf("shop payout must equal subtotal: got %v vs %v", s.PayoutToShop, s.Subtotal)
	}
}

func TestSummarizeMissingCustomer(t *testing.T) {
	o := model.Order{Items: []model.OrderItem{{ProductID: "p1", Qty: 1}}}

	s := Summarize(o, testProducts(), nil)
	if s.Commission != 0 {
		t.Fatalf("missing customer commission must be zero: got %v", s.Commission)
	}
	if s.PayoutToShop != 10.5 {
		t.Fatalf("missing customer payout must equal subtotal: got %v", s.PayoutToShop)
	}
}

func TestSummarizeMissingProduct(t *testing.T) {
	o := model.Order{Items: []model.OrderItem{
		{ProductID: "gone", Qty: 5},
		{ProductID: "p2", Qty: 2},
	}}

	s := Summarize(o, testProducts(), nil)
	if s.Subtotal != 6.5 {
		t.Fatalf("missing product must price at zero: got %v", s.Subtotal)
	}
}

func TestSummarizeNegativeQty(t *testing.T) {
	// the model enforces no qty floor; a correction line subtracts
	o := model.Order{Items: []model.OrderItem{
		{ProductID: "p1", Qty: 2},
		{ProductID: "p1", Qty: -1},
	}}

	s := Summarize(o, testProducts(), nil)
	if s.Subtotal != 10.5 {
		t.Fatalf("negative qty: got %v", s.Subtotal)
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	o := model.Order{Items: []model.OrderItem{{ProductID: "p1", Qty: 3}}}
	c := &model.Customer{ID: "c1", Name: "Ayse", Type: model.CustomerOwn}
	products := testProducts()

	first := Summarize(o, products, c)
	second := Summarize(o, products, c)
	if first != second {
		t.Fatalf("summaries differ: %+v vs %+v", first, second)
	}
}
