package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/btoksoz/tatli-panel/internal/geo"
	"github.com/btoksoz/tatli-panel/internal/model"
	"github.com/btoksoz/tatli-panel/internal/store"
	"github.com/btoksoz/tatli-panel/pkg/logger"
	"github.com/btoksoz/tatli-panel/prometheus"
)

// CustomerRequest defines the structure for customer creation/update requests
type CustomerRequest struct {
	Name       string             `json:"name"`
	Type       model.CustomerType `json:"type"`
	Address    string             `json:"address"`
	MapURL     string             `json:"mapUrl"`
	Phone      string             `json:"phone"`
	Commission *model.Commission  `json:"commission"`
	Lat        float64            `json:"lat"`
	Lng        float64            `json:"lng"`
}

func (r *CustomerRequest) toModel() model.Customer {
	return model.Customer{
		Name:       r.Name,
		Type:       r.Type,
		Address:    r.Address,
		MapURL:     r.MapURL,
		Phone:      r.Phone,
		Commission: r.Commission,
		Lat:        r.Lat,
		Lng:        r.Lng,
	}
}

// ListCustomers handles retrieving customers with optional name/address search
func ListCustomers(c echo.Context) error {
	log := logger.FromContext(c)

	customers := store.Get().Customers()
	if q := strings.ToLower(c.QueryParam("q")); q != "" {
		matched := make([]model.Customer, 0, len(customers))
		for _, cust := range customers {
			if strings.Contains(strings.ToLower(cust.Name+" "+cust.Address), q) {
				matched = append(matched, cust)
			}
		}
		customers = matched
		log.Info("Customers searched", zap.String("q", q), zap.Int("count", len(customers)))
	}

	return c.JSON(http.StatusOK, customers)
}

// CreateCustomer handles creating a new customer
func CreateCustomer(c echo.Context) error {
	log := logger.FromContext(c)

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Type == "" {
		req.Type = model.CustomerOwn
	}

	created, err := store.Get().AddCustomer(req.toModel())
	if err != nil {
		log.Warn("Customer rejected", zap.String("name", req.Name), zap.Error(err))
		return writeError(c, err)
	}

	prometheus.RecordOperation("customers", "create")
	log.Info("Customer created",
		zap.String("customer_id", created.ID),
		zap.String("name", created.Name),
		zap.String("type", string(created.Type)))
	return c.JSON(http.StatusCreated, created)
}

// UpdateCustomer handles updating an existing customer
func UpdateCustomer(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("customer_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	updated, err := store.Get().UpdateCustomer(id, req.toModel())
	if err != nil {
		log.Warn("Customer update rejected", zap.String("customer_id", id), zap.Error(err))
		return writeError(c, err)
	}

	prometheus.RecordOperation("customers", "update")
	log.Info("Customer updated",
		zap.String("customer_id", id),
		zap.String("name", updated.Name),
		zap.String("type", string(updated.Type)))
	return c.JSON(http.StatusOK, updated)
}

// DeleteCustomer handles deleting a customer. Orders referencing the
// customer are kept; they degrade to an unknown customer on display.
func DeleteCustomer(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if !store.Get().RemoveCustomer(id) {
		log.Warn("Customer not found for deletion", zap.String("customer_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Customer not found"})
	}

	prometheus.RecordOperation("customers", "delete")
	log.Info("Customer deleted", zap.String("customer_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Customer deleted successfully"})
}

// GetCustomerMap handles resolving a customer's point-lookup map link
func GetCustomerMap(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	customer, ok := store.Get().Customer(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Customer not found"})
	}

	mapURL, ok := geo.PointLookupURL(cfg.Maps.SearchBaseURL, &customer)
	if !ok {
		log.Warn("Customer has no resolvable location", zap.String("customer_id", id))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "no resolvable location"})
	}

	return c.JSON(http.StatusOK, echo.Map{"url": mapURL})
}
