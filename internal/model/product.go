package model

import "math"

// Product represents a catalog item
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	// Photo is a self-contained image-data string, not a file path
	Photo string `json:"photo,omitempty"`
}

// Validate checks the invariants enforced at the store boundary
func (p *Product) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		return &ValidationError{Field: "price", Reason: "must be a finite number"}
	}
	if p.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}

// IndexProducts builds a lookup table keyed by product ID
func IndexProducts(products []Product) map[string]Product {
	idx := make(map[string]Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}
