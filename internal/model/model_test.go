package model

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestCommissionUnmarshalForms(t *testing.T) {
	var c Customer
	if err := json.Unmarshal([]byte(`{"id":"c1","name":"Ayse","type":"own","commission":15}`), &c); err != nil {
		t.Fatalf("number form: %v", err)
	}
	if c.Commission == nil || !c.Commission.Set || c.Commission.Value != 15 {
		t.Fatalf("number form: %+v", c.Commission)
	}

	if err := json.Unmarshal([]byte(`{"id":"c1","name":"Ayse","type":"own","commission":"12.5"}`), &c); err != nil {
		t.Fatalf("string form: %v", err)
	}
	if c.Commission == nil || c.Commission.Value != 12.5 {
		t.Fatalf("string form: %+v", c.Commission)
	}

	c = Customer{}
	if err := json.Unmarshal([]byte(`{"id":"c1","name":"Ayse","type":"own"}`), &c); err != nil {
		t.Fatalf("absent form: %v", err)
	}
	if c.Commission.Percent() != DefaultCommissionPercent {
		t.Fatalf("absent commission should default to %d", DefaultCommissionPercent)
	}
}

func TestCommissionRejectsNonNumeric(t *testing.T) {
	var c Customer
	err := json.Unmarshal([]byte(`{"id":"c1","name":"Ayse","type":"own","commission":"lots"}`), &c)
	if err == nil {
		t.Fatalf("expected error for non-numeric commission")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestCommissionMarshalRoundTrip(t *testing.T) {
	c := Customer{ID: "c1", Name: "Ayse", Type: CustomerOwn, Commission: &Commission{Value: 12.5, Set: true}}
	b, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Customer
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Commission == nil || back.Commission.Value != 12.5 {
		t.Fatalf("round trip lost commission: %+v", back.Commission)
	}
}

func TestOrderStatusCycle(t *testing.T) {
	s := StatusPending
	s = s.Next()
	if s != StatusReady {
		t.Fatalf("pending should advance to ready, got %s", s)
	}
	s = s.Next()
	if s != StatusDelivered {
		t.Fatalf("ready should advance to delivered, got %s", s)
	}
	s = s.Next()
	if s != StatusPending {
		t.Fatalf("delivered should wrap to pending, got %s", s)
	}
}

func TestCustomerValidate(t *testing.T) {
	c := Customer{Type: CustomerOwn}
	if err := c.Validate(); err == nil {
		t.Fatalf("missing name should be rejected")
	}
	c = Customer{Name: "Ayse", Type: "wholesale"}
	if err := c.Validate(); err == nil {
		t.Fatalf("unknown type should be rejected")
	}
	c = Customer{Name: "Ayse", Type: CustomerShop}
	if err := c.Validate(); err != nil {
		t.Fatalf("valid customer rejected: %v", err)
	}
}

func TestProductValidate(t *testing.T) {
	p := Product{Name: "Profiterol", Price: math.NaN()}
	if err := p.Validate(); err == nil {
		t.Fatalf("NaN price should be rejected")
	}
	p.Price = -1
	if err := p.Validate(); err == nil {
		t.Fatalf("negative price should be rejected")
	}
	p.Price = 0
	if err := p.Validate(); err != nil {
		t.Fatalf("zero price is valid: %v", err)
	}
}

func TestOrderValidate(t *testing.T) {
	o := Order{Date: "2025-01-01", Items: []OrderItem{{ProductID: "p1", Qty: 1}}}
	if err := o.Validate(); err == nil {
		t.Fatalf("missing customer should be rejected")
	}
	o.CustomerID = "c1"
	o.Items = nil
	if err := o.Validate(); err == nil {
		t.Fatalf("empty items should be rejected")
	}
	o.Items = []OrderItem{{ProductID: "p1", Qty: 0}}
	if err := o.Validate(); err != nil {
		t.Fatalf("zero qty is not floored by the model: %v", err)
	}
}

func TestParseBackupDefaults(t *testing.T) {
	b, err := ParseBackup([]byte(`{"customers":[{"id":"c1","name":"Ayse","type":"own"}]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(b.Customers) != 1 {
		t.Fatalf("customers: %+v", b.Customers)
	}
	if b.Products == nil || len(b.Products) != 0 {
		t.Fatalf("missing products should default empty, got %+v", b.Products)
	}
	if b.Orders == nil || len(b.Orders) != 0 {
		t.Fatalf("missing orders should default empty, got %+v", b.Orders)
	}
}

func TestParseBackupMalformed(t *testing.T) {
	_, err := ParseBackup([]byte(`{"customers": [`))
	if !errors.Is(err, ErrMalformedBackup) {
		t.Fatalf("expected ErrMalformedBackup, got %v", err)
	}
}
