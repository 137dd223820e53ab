package store

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/btoksoz/tatli-panel/internal/model"
	"github.com/btoksoz/tatli-panel/pkg/logger"
)

// Records holds the three collections in memory and writes each mutation
// through to the backend. A failed write is logged and swallowed; the
// in-memory state stays the effective truth until the next successful
// write.
type Records struct {
	mu sync.RWMutex
	s  Store

	customers []model.Customer
	products  []model.Product
	orders    []model.Order
}

// Open loads all collections from the backend. Absent keys load as empty
// collections.
func Open(s Store) (*Records, error) {
	r := &Records{
		s:         s,
		customers: []model.Customer{},
		products:  []model.Product{},
		orders:    []model.Order{},
	}
	if err := s.Load(KeyCustomers, &r.customers); err != nil {
		return nil, err
	}
	if err := s.Load(KeyProducts, &r.products); err != nil {
		return nil, err
	}
	if err := s.Load(KeyOrders, &r.orders); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Records) Close() error { return r.s.Close() }

// persist writes one collection through, swallowing failures
func (r *Records) persist(key string, v any) {
	if err := r.s.Save(key, v); err != nil {
		logger.GetLogger().Warn("Record store write failed, keeping in-memory state",
			zap.String("key", key),
			zap.Error(err))
		if OnWriteFailure != nil {
			OnWriteFailure()
		}
	}
}

/* ---------------- customers ---------------- */

// Customers returns a copy of the customer collection
func (r *Records) Customers() []model.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Customer, len(r.customers))
	copy(out, r.customers)
	return out
}

// Customer looks up a customer by ID
func (r *Records) Customer(id string) (model.Customer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.ID == id {
			return c, true
		}
	}
	return model.Customer{}, false
}

// AddCustomer validates the record, assigns a fresh ID and prepends it
// (newest first).
func (r *Records) AddCustomer(c model.Customer) (model.Customer, error) {
	if err := c.Validate(); err != nil {
		return model.Customer{}, err
	}
	c.ID = uuid.New().String()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = append([]model.Customer{c}, r.customers...)
	r.persist(KeyCustomers, r.customers)
	return c, nil
}

// UpdateCustomer replaces the record with the given ID in place
func (r *Records) UpdateCustomer(id string, c model.Customer) (model.Customer, error) {
	if err := c.Validate(); err != nil {
		return model.Customer{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.customers {
		if r.customers[i].ID == id {
			c.ID = id
			r.customers[i] = c
			r.persist(KeyCustomers, r.customers)
			return c, nil
		}
	}
	return model.Customer{}, ErrNotFound
}

// RemoveCustomer deletes the record. Orders referencing it are left alone;
// their customer lookups degrade to "unknown".
func (r *Records) RemoveCustomer(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.customers {
		if r.customers[i].ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			r.persist(KeyCustomers, r.customers)
			return true
		}
	}
	return false
}

/* ---------------- products ---------------- */

// Products returns a copy of the product collection
func (r *Records) Products() []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out
}

// AddProduct validates the record, assigns a fresh ID and prepends it
func (r *Records) AddProduct(p model.Product) (model.Product, error) {
	if err := p.Validate(); err != nil {
		return model.Product{}, err
	}
	p.ID = uuid.New().String()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append([]model.Product{p}, r.products...)
	r.persist(KeyProducts, r.products)
	return p, nil
}

// UpdateProduct replaces the record with the given ID in place
func (r *Records) UpdateProduct(id string, p model.Product) (model.Product, error) {
	if err := p.Validate(); err != nil {
		return model.Product{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			p.ID = id
			r.products[i] = p
			r.persist(KeyProducts, r.products)
			return p, nil
		}
	}
	return model.Product{}, ErrNotFound
}

// RemoveProduct deletes the record. Order items referencing it resolve to
// zero price from then on.
func (r *Records) RemoveProduct(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			r.persist(KeyProducts, r.products)
			return true
		}
	}
	return false
}

/* ---------------- orders ---------------- */

// Orders returns a copy of the order collection
func (r *Records) Orders() []model.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

// Order looks up an order by ID
func (r *Records) Order(id string) (model.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

// AddOrder validates the draft, assigns a fresh ID, forces status to
// pending and prepends the order.
func (r *Records) AddOrder(o model.Order) (model.Order, error) {
	if err := o.Validate(); err != nil {
		return model.Order{}, err
	}
	o.ID = uuid.New().String()
	o.Status = model.StatusPending
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append([]model.Order{o}, r.orders...)
	r.persist(KeyOrders, r.orders)
	return o, nil
}

// UpdateOrder replaces the record with the given ID in place
func (r *Records) UpdateOrder(id string, o model.Order) (model.Order, error) {
	if err := o.Validate(); err != nil {
		return model.Order{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			o.ID = id
			if o.Status == "" {
				o.Status = r.orders[i].Status
			}
			r.orders[i] = o
			r.persist(KeyOrders, r.orders)
			return o, nil
		}
	}
	return model.Order{}, ErrNotFound
}

// CycleOrderStatus advances an order through pending → ready → delivered →
// pending.
func (r *Records) CycleOrderStatus(id string) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = r.orders[i].Status.Next()
			r.persist(KeyOrders, r.orders)
			return r.orders[i], nil
		}
	}
	return model.Order{}, ErrNotFound
}

// RemoveOrder deletes the record unconditionally
func (r *Records) RemoveOrder(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			r.persist(KeyOrders, r.orders)
			return true
		}
	}
	return false
}

/* ---------------- backup ---------------- */

// Snapshot captures all collections for export
func (r *Records) Snapshot() *model.Backup {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b := &model.Backup{
		Customers: make([]model.Customer, len(r.customers)),
		Products:  make([]model.Product, len(r.products)),
		Orders:    make([]model.Order, len(r.orders)),
	}
	copy(b.Customers, r.customers)
	copy(b.Products, r.products)
	copy(b.Orders, r.orders)
	return b
}

// ReplaceAll imports a backup, fully replacing every collection
func (r *Records) ReplaceAll(b *model.Backup) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = append([]model.Customer{}, b.Customers...)
	r.products = append([]model.Product{}, b.Products...)
	r.orders = append([]model.Order{}, b.Orders...)
	r.persist(KeyCustomers, r.customers)
	r.persist(KeyProducts, r.products)
	r.persist(KeyOrders, r.orders)
}
