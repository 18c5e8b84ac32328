package detect

import (
	"fmt"
	"log/slog"
	"os"

	"revenue-leakage/connectors/chart"
	"revenue-leakage/connectors/config"
	ccsv "revenue-leakage/connectors/csv"
	"revenue-leakage/domain/leakage"
)

// Run executes the detect command (no extra args expected): load the customer
// CSV, compute per-customer leakage, print the summary and persist the
// histogram plus the annotated table.
func Run(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("detect: no arguments expected")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	records, err := ccsv.LoadCustomers(cfg.Data.Input)
	if err != nil {
		return err
	}
	slog.Info(fmt.Sprintf("detect.loaded count=%d file=%s", len(records), cfg.Data.Input))

	customers := leakage.Compute(records)
	summary, err := leakage.Summarize(customers)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Data.Input, err)
	}

	printSummary(summary)

	if err := chart.WriteHistogram(leakage.Leakages(customers), cfg.Histogram.Bins, cfg.HistogramPath()); err != nil {
		return err
	}
	fmt.Printf("Histogram saved to %s\n", cfg.HistogramPath())

	if err := ccsv.WriteCustomerLeakage(cfg.CustomerLeakagePath(), customers); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "detect.done count=%d positive=%d\n", summary.TotalRecords, summary.PositiveLeakageCount)
	return nil
}

// printSummary writes the human-readable report to stdout. Formatting is
// display-only; the summary values themselves are unrounded.
func printSummary(s leakage.Summary) {
	fmt.Println("Revenue Leakage Summary:")
	fmt.Printf("Total customers: %d\n", s.TotalRecords)
	fmt.Printf("Total leakage: %.2f\n", s.TotalLeakage)
	fmt.Printf("Average leakage per customer: %.2f\n", s.AverageLeakage)
	fmt.Printf("Customers with positive leakage: %d\n", s.PositiveLeakageCount)
}
