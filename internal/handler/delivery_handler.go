package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/btoksoz/tatli-panel/internal/delivery"
	"github.com/btoksoz/tatli-panel/internal/geo"
	"github.com/btoksoz/tatli-panel/internal/model"
	"github.com/btoksoz/tatli-panel/internal/store"
	"github.com/btoksoz/tatli-panel/pkg/logger"
	"github.com/btoksoz/tatli-panel/prometheus"
)

// DeliveryEntry is one row of the delivery worklist: the order plus its
// customer's display name and resolved stop (empty when unresolvable).
type DeliveryEntry struct {
	model.Order
	CustomerName string `json:"customerName"`
	Stop         string `json:"stop,omitempty"`
}

// RouteRequest carries the selected order IDs for route building
type RouteRequest struct {
	OrderIDs []string `json:"order_ids"`
}

// ListDelivery handles the delivery worklist: orders filtered by date,
// status and the hide-delivered flag (on unless explicitly disabled).
func ListDelivery(c echo.Context) error {
	log := logger.FromContext(c)

	date := c.QueryParam("date")
	status := c.QueryParam("status")
	hideDelivered := true
	if v := c.QueryParam("hide_delivered"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hide_delivered value"})
		}
		hideDelivered = parsed
	}

	rec := store.Get()
	filtered := delivery.Filter(rec.Orders(), date, status, hideDelivered)
	customers := model.IndexCustomers(rec.Customers())

	entries := make([]DeliveryEntry, 0, len(filtered))
	for _, o := range filtered {
		entry := DeliveryEntry{Order: o, CustomerName: unknownCustomerName}
		if cust, ok := customers[o.CustomerID]; ok {
			entry.CustomerName = cust.Name
			if stop, resolved := geo.ResolveStop(&cust); resolved {
				entry.Stop = stop
			}
		}
		entries = append(entries, entry)
	}

	log.Info("Delivery list filtered",
		zap.String("date", date),
		zap.String("status", status),
		zap.Bool("hide_delivered", hideDelivered),
		zap.Int("count", len(entries)))
	return c.JSON(http.StatusOK, entries)
}

// BuildRoute handles composing the external route URL for the selected
// orders. A selection with no resolvable destination is rejected and no
// navigation happens.
func BuildRoute(c echo.Context) error {
	log := logger.FromContext(c)

	var req RouteRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	rec := store.Get()
	route, err := delivery.BuildRoute(
		cfg.Maps.DirectionsBaseURL,
		req.OrderIDs,
		model.IndexOrders(rec.Orders()),
		model.IndexCustomers(rec.Customers()),
	)
	if err != nil {
		if errors.Is(err, delivery.ErrNoStops) {
			prometheus.RecordRouteBuild("no_stops", 0)
			log.Warn("Route build yielded no resolvable destination",
				zap.Int("selected", len(req.OrderIDs)))
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "no resolvable destination"})
		}
		return writeError(c, err)
	}

	prometheus.RecordRouteBuild("ok", len(route.Stops))
	log.Info("Route built",
		zap.Int("selected", len(req.OrderIDs)),
		zap.Int("stops", len(route.Stops)))
	return c.JSON(http.StatusOK, route)
}
