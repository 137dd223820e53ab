package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/btoksoz/tatli-panel/internal/model"
	"github.com/btoksoz/tatli-panel/internal/store"
	"github.com/btoksoz/tatli-panel/pkg/config"
)

var cfg *config.Config

// Init gives the handlers access to the application configuration
func Init(c *config.Config) {
	cfg = c
}

// writeError maps core errors to JSON responses: validation failures are
// 400, missing records 404, everything else 500.
func writeError(c echo.Context, err error) error {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "record not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
