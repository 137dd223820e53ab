package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/btoksoz/tatli-panel/internal/model"
	"github.com/btoksoz/tatli-panel/internal/store"
	"github.com/btoksoz/tatli-panel/pkg/logger"
	"github.com/btoksoz/tatli-panel/prometheus"
)

// ExportBackup handles downloading all collections as a pretty-printed
// JSON document named after the current date.
func ExportBackup(c echo.Context) error {
	log := logger.FromContext(c)

	snapshot := store.Get().Snapshot()
	body, err := snapshot.Marshal()
	if err != nil {
		prometheus.RecordBackupOperation("export", "error")
		log.Error("Failed to serialize backup", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to serialize backup"})
	}

	filename := fmt.Sprintf("tatli-panel-backup-%s.json", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))

	prometheus.RecordBackupOperation("export", "ok")
	log.Info("Backup exported",
		zap.Int("customers", len(snapshot.Customers)),
		zap.Int("products", len(snapshot.Products)),
		zap.Int("orders", len(snapshot.Orders)))
	return c.JSONBlob(http.StatusOK, body)
}

// ImportBackup handles importing a backup document. Each collection fully
// replaces the current one; missing arrays import as empty. A document
// that fails to parse or validate leaves the store unchanged.
func ImportBackup(c echo.Context) error {
	log := logger.FromContext(c)

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		prometheus.RecordBackupOperation("import", "error")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Failed to read request body"})
	}

	backup, err := model.ParseBackup(body)
	if err != nil {
		prometheus.RecordBackupOperation("import", "malformed")
		log.Warn("Backup import rejected", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "malformed backup document"})
	}

	for i := range backup.Customers {
		if err := backup.Customers[i].Validate(); err != nil {
			prometheus.RecordBackupOperation("import", "invalid")
			log.Warn("Backup import rejected", zap.Int("customer_index", i), zap.Error(err))
			return writeError(c, err)
		}
	}
	for i := range backup.Products {
		if err := backup.Products[i].Validate(); err != nil {
			prometheus.RecordBackupOperation("import", "invalid")
			log.Warn("Backup import rejected", zap.Int("product_index", i), zap.Error(err))
			return writeError(c, err)
		}
	}
	for i := range backup.Orders {
		if err := backup.Orders[i].Validate(); err != nil {
			prometheus.RecordBackupOperation("import", "invalid")
			log.Warn("Backup import rejected", zap.Int("order_index", i), zap.Error(err))
			return writeError(c, err)
		}
	}

	store.Get().ReplaceAll(backup)

	prometheus.RecordBackupOperation("import", "ok")
	log.Info("Backup imported",
		zap.Int("customers", len(backup.Customers)),
		zap.Int("products", len(backup.Products)),
		zap.Int("orders", len(backup.Orders)))
	return c.JSON(http.StatusOK, echo.Map{
		"customers": len(backup.Customers),
		"products":  len(backup.Products),
		"orders":    len(backup.Orders),
	})
}
