package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/btoksoz/tatli-panel/internal/model"
	"github.com/btoksoz/tatli-panel/internal/pricing"
	"github.com/btoksoz/tatli-panel/internal/store"
	"github.com/btoksoz/tatli-panel/pkg/logger"
	"github.com/btoksoz/tatli-panel/prometheus"
)

// OrderRequest defines the structure for order creation/update requests
type OrderRequest struct {
	Date       string            `json:"date"`
	CustomerID string            `json:"customerId"`
	Items      []model.OrderItem `json:"items"`
	Status     model.OrderStatus `json:"status"`
}

// OrderView is an order decorated with its customer's display name and
// financial split, the shape the order list renders from.
type OrderView struct {
	model.Order
	CustomerName string          `json:"customerName"`
	Summary      pricing.Summary `json:"summary"`
}

// unknownCustomerName is shown for orders whose customer was deleted
const unknownCustomerName = "?"

// ListOrders handles retrieving orders with optional customer-name search.
// Each entry carries its pricing summary; orders for deleted customers
// degrade to an unknown display name and zero commission.
func ListOrders(c echo.Context) error {
	log := logger.FromContext(c)

	rec := store.Get()
	orders := rec.Orders()
	products := model.IndexProducts(rec.Products())
	customers := model.IndexCustomers(rec.Customers())

	q := strings.ToLower(c.QueryParam("q"))
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		name := unknownCustomerName
		var customer *model.Customer
		if cust, ok := customers[o.CustomerID]; ok {
			customer = &cust
			name = cust.Name
		}
		if q != "" && !strings.Contains(strings.ToLower(name), q) {
			continue
		}
		views = append(views, OrderView{
			Order:        o,
			CustomerName: name,
			Summary:      pricing.Summarize(o, products, customer),
		})
	}

	log.Info("Orders listed", zap.Int("count", len(views)))
	return c.JSON(http.StatusOK, views)
}

// CreateOrder handles creating a new order from the current draft. The
// order starts in pending status; a missing date defaults to today.
func CreateOrder(c echo.Context) error {
	log := logger.FromContext(c)

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	created, err := store.Get().AddOrder(model.Order{
		Date:       req.Date,
		CustomerID: req.CustomerID,
		Items:      req.Items,
	})
	if err != nil {
		log.Warn("Order rejected", zap.String("customer_id", req.CustomerID), zap.Error(err))
		return writeError(c, err)
	}

	prometheus.RecordOperation("orders", "create")
	log.Info("Order created",
		zap.String("order_id", created.ID),
		zap.String("date", created.Date),
		zap.String("customer_id", created.CustomerID),
		zap.Int("items", len(created.Items)))
	return c.JSON(http.StatusCreated, created)
}

// UpdateOrder handles updating an existing order
func UpdateOrder(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("order_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	updated, err := store.Get().UpdateOrder(id, model.Order{
		Date:       req.Date,
		CustomerID: req.CustomerID,
		Items:      req.Items,
		Status:     req.Status,
	})
	if err != nil {
		log.Warn("Order update rejected", zap.String("order_id", id), zap.Error(err))
		return writeError(c, err)
	}

	prometheus.RecordOperation("orders", "update")
	log.Info("Order updated", zap.String("order_id", id), zap.String("status", string(updated.Status)))
	return c.JSON(http.StatusOK, updated)
}

// CycleOrderStatus advances an order through pending → ready → delivered →
// pending on explicit user action.
func CycleOrderStatus(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	updated, err := store.Get().CycleOrderStatus(id)
	if err != nil {
		log.Warn("Order not found for status change", zap.String("order_id", id))
		return writeError(c, err)
	}

	prometheus.RecordOperation("orders", "status")
	log.Info("Order status advanced",
		zap.String("order_id", id),
		zap.String("status", string(updated.Status)))
	return c.JSON(http.StatusOK, updated)
}

// DeleteOrder handles deleting an order unconditionally
func DeleteOrder(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if !store.Get().RemoveOrder(id) {
		log.Warn("Order not found for deletion", zap.String("order_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Order not found"})
	}

	prometheus.RecordOperation("orders", "delete")
	log.Info("Order deleted", zap.String("order_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Order deleted successfully"})
}

// GetOrderSummary handles computing the financial split for a single order
func GetOrderSummary(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	rec := store.Get()
	order, ok := rec.Order(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Order not found"})
	}

	var customer *model.Customer
	if cust, found := rec.Customer(order.CustomerID); found {
		customer = &cust
	}
	summary := pricing.Summarize(order, model.IndexProducts(rec.Products()), customer)

	log.Info("Order summarized",
		zap.String("order_id", id),
		zap.Float64("subtotal", summary.Subtotal))
	return c.JSON(http.StatusOK, summary)
}
