package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/btoksoz/tatli-panel/internal/model"
	"github.com/btoksoz/tatli-panel/internal/store"
	"github.com/btoksoz/tatli-panel/pkg/logger"
	"github.com/btoksoz/tatli-panel/prometheus"
)

// ProductRequest defines the structure for product creation/update requests
type ProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Photo string  `json:"photo"`
}

// ListProducts handles retrieving products with optional name search
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)

	products := store.Get().Products()
	if q := strings.ToLower(c.QueryParam("q")); q != "" {
		matched := make([]model.Product, 0, len(products))
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), q) {
				matched = append(matched, p)
			}
		}
		products = matched
		log.Info("Products searched", zap.String("q", q), zap.Int("count", len(products)))
	}

	return c.JSON(http.StatusOK, products)
}

// CreateProduct handles creating a new product
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	created, err := store.Get().AddProduct(model.Product{
		Name:  req.Name,
		Price: req.Price,
		Photo: req.Photo,
	})
	if err != nil {
		log.Warn("Product rejected", zap.String("name", req.Name), zap.Error(err))
		return writeError(c, err)
	}

	prometheus.RecordOperation("products", "create")
	log.Info("Product created",
		zap.String("product_id", created.ID),
		zap.String("name", created.Name),
		zap.Float64("price", created.Price))
	return c.JSON(http.StatusCreated, created)
}

// UpdateProduct handles updating an existing product
func UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	updated, err := store.Get().UpdateProduct(id, model.Product{
		Name:  req.Name,
		Price: req.Price,
		Photo: req.Photo,
	})
	if err != nil {
		log.Warn("Product update rejected", zap.String("product_id", id), zap.Error(err))
		return writeError(c, err)
	}

	prometheus.RecordOperation("products", "update")
	log.Info("Product updated",
		zap.String("product_id", id),
		zap.String("name", updated.Name),
		zap.Float64("price", updated.Price))
	return c.JSON(http.StatusOK, updated)
}

// DeleteProduct handles deleting a product. Order items referencing it
// resolve to zero price and an unknown name afterwards.
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if !store.Get().RemoveProduct(id) {
		log.Warn("Product not found for deletion", zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	}

	prometheus.RecordOperation("products", "delete")
	log.Info("Product deleted", zap.String("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}
