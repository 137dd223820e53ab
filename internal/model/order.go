package model

// OrderStatus tracks an order through the delivery workflow
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

// Valid reports whether the status is one of the closed enum values
func (s OrderStatus) Valid() bool {
	return s == StatusPending || s == StatusReady || s == StatusDelivered
}

// Next advances the status through the pending → ready → delivered cycle.
// Delivered wraps back to pending so a returned order can be re-activated.
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case StatusPending:
		return StatusReady
	case StatusReady:
		return StatusDelivered
	default:
		return StatusPending
	}
}

// OrderItem is a single product line on an order. The referenced product is
// not required to still exist; pricing degrades to zero for missing ones.
type OrderItem struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// Order represents a dated order for a customer. Dates are plain calendar
// strings compared by exact equality, never normalized across timezones.
type Order struct {
	ID         string      `json:"id"`
	Date       string      `json:"date"`
	CustomerID string      `json:"customerId"`
	Items      []OrderItem `json:"items"`
	Status     OrderStatus `json:"status"`
}

// Validate checks the invariants enforced at the store boundary
func (o *Order) Validate() error {
	if o.CustomerID == "" {
		return &ValidationError{Field: "customerId", Reason: "is required"}
	}
	if len(o.Items) == 0 {
		return &ValidationError{Field: "items", Reason: "must not be empty"}
	}
	if o.Status != "" && !o.Status.Valid() {
		return &ValidationError{Field: "status", Reason: "must be pending, ready or delivered"}
	}
	return nil
}

// IndexOrders builds a lookup table keyed by order ID
func IndexOrders(orders []Order) map[string]Order {
	idx := make(map[string]Order, len(orders))
	for _, o := range orders {
		idx[o.ID] = o
	}
	return idx
}

// IndexCustomers builds a lookup table keyed by customer ID
func IndexCustomers(customers []Customer) map[string]Customer {
	idx := make(map[string]Customer, len(customers))
	for _, c := range customers {
		idx[c.ID] = c
	}
	return idx
}
