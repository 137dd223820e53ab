package model

import (
	"encoding/json"
	"strconv"
)

// CustomerType distinguishes direct customers from consignment shops
type CustomerType string

const (
	// CustomerOwn is a direct end-customer; profit is retained as commission
	CustomerOwn CustomerType = "own"
	// CustomerShop is a consignment/reseller channel; no commission applies
	CustomerShop CustomerType = "shop"
)

// Valid reports whether the type is one of the closed enum values
func (t CustomerType) Valid() bool {
	return t == CustomerOwn || t == CustomerShop
}

// DefaultCommissionPercent applies to own-type customers without a stored rate
const DefaultCommissionPercent = 20

// Commission is a percentage that legacy records store either as a JSON
// number or as a numeric string. The zero value means "not set".
type Commission struct {
	Value float64
	Set   bool
}

// UnmarshalJSON accepts a number, a numeric string, or null
func (c *Commission) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		c.Value = f
		c.Set = true
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return &ValidationError{Field: "commission", Reason: "must be numeric"}
	}
	c.Value = f
	c.Set = true
	return nil
}

// MarshalJSON writes the rate back as a plain number
func (c Commission) MarshalJSON() ([]byte, error) {
	if !c.Set {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

// Percent returns the stored rate, or the default when none is set
func (c *Commission) Percent() float64 {
	if c == nil || !c.Set {
		return DefaultCommissionPercent
	}
	return c.Value
}

// Customer represents a delivery customer or a consignment shop
type Customer struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Type       CustomerType `json:"type"`
	Address    string       `json:"address,omitempty"`
	MapURL     string       `json:"mapUrl,omitempty"`
	Phone      string       `json:"phone,omitempty"`
	Commission *Commission  `json:"commission,omitempty"`
	// Legacy coordinate pair kept for records created before map links
	Lat float64 `json:"lat,omitempty"`
	Lng float64 `json:"lng,omitempty"`
}

// Validate checks the invariants enforced at the store boundary
func (c *Customer) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if !c.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "must be 'own' or 'shop'"}
	}
	return nil
}
