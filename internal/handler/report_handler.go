package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/btoksoz/tatli-panel/internal/model"
	"github.com/btoksoz/tatli-panel/internal/pricing"
	"github.com/btoksoz/tatli-panel/internal/store"
	"github.com/btoksoz/tatli-panel/pkg/logger"
	"github.com/btoksoz/tatli-panel/prometheus"
)

// DailyReport handles the day-end report: gross revenue, retained own
// commission and shop payout for the requested date (default today).
// Totals are rounded to two decimals here, at the presentation edge.
func DailyReport(c echo.Context) error {
	log := logger.FromContext(c)

	date := c.QueryParam("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	rec := store.Get()
	totals := pricing.Aggregate(
		rec.Orders(),
		date,
		model.IndexProducts(rec.Products()),
		model.IndexCustomers(rec.Customers()),
	)

	prometheus.ReportRequestsCounter.Inc()
	log.Info("Daily report computed",
		zap.String("date", date),
		zap.Float64("gross", totals.Gross))
	return c.JSON(http.StatusOK, pricing.Totals{
		Gross: pricing.Round2(totals.Gross),
		Own:   pricing.Round2(totals.Own),
		Shop:  pricing.Round2(totals.Shop),
	})
}
