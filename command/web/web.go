package web

import (
	"errors"
	"flag"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"revenue-leakage/connectors/config"
	ccsv "revenue-leakage/connectors/csv"
	"revenue-leakage/domain/leakage"
)

// Run starts a small Echo web server exposing the leakage report as JSON.
//
// Usage:
//
//	revenue-leakage web [-addr :8080]
//
// Endpoints:
//
//	GET /api/summary     -> dataset-wide leakage statistics
//	GET /api/customers   -> per-customer annotated rows
//	GET /histogram.png   -> histogram image from the last detect run (404 if missing)
//
// Summary and customers are recomputed from the input CSV on each request;
// there is no second computation path and no caching.
func Run(args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	addr := fs.String("addr", cfg.Web.Addr, "http listen address (host:port)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e := newServer(cfg)
	return e.Start(*addr)
}

func newServer(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	load := func(c echo.Context) ([]leakage.Customer, error) {
		records, err := ccsv.LoadCustomers(cfg.Data.Input)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, c.JSON(http.StatusNotFound, map[string]any{
					"error":   "file not found",
					"path":    cfg.Data.Input,
					"message": "input CSV is missing",
				})
			}
			return nil, c.JSON(http.StatusInternalServerError, map[string]any{
				"error":   err.Error(),
				"path":    cfg.Data.Input,
				"message": "failed to load customers",
			})
		}
		return leakage.Compute(records), nil
	}

	e.GET("/api/summary", func(c echo.Context) error {
		customers, err := load(c)
		if customers == nil {
			return err
		}
		summary, err := leakage.Summarize(customers)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, map[string]any{
				"error":   err.Error(),
				"message": "dataset is empty",
			})
		}
		return c.JSON(http.StatusOK, summary)
	})

	e.GET("/api/customers", func(c echo.Context) error {
		customers, err := load(c)
		if customers == nil {
			return err
		}
		rows := make([]map[string]any, 0, len(customers))
		for _, cu := range customers {
			rows = append(rows, map[string]any{
				"customer_id":      cu.CustomerID,
				"tenure":           cu.Tenure,
				"monthly_charges":  cu.MonthlyCharges,
				"total_charges":    cu.TotalCharges,
				"expected_revenue": cu.ExpectedRevenue,
				"leakage":          cu.Leakage,
			})
		}
		return c.JSON(http.StatusOK, rows)
	})

	e.GET("/histogram.png", func(c echo.Context) error {
		path := cfg.HistogramPath()
		if fi, err := os.Stat(path); err != nil || fi.IsDir() {
			return c.JSON(http.StatusNotFound, map[string]any{
				"error":   "file not found",
				"path":    path,
				"message": "run detect first to render the histogram",
			})
		}
		return c.File(path)
	})

	return e
}
