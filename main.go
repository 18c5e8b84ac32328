package main

import (
	"fmt"
	"log/slog"
	"os"

	cmddetect "revenue-leakage/command/detect"
	cmdweb "revenue-leakage/command/web"
)

// Revenue leakage detector for subscription customers.
// Usage:
//   revenue-leakage [detect]           one-shot run: load CSV, print summary, write histogram
//   revenue-leakage web [-addr :8080]  serve the computed report over HTTP
// Notes:
// - Input CSV must carry customerID, tenure, MonthlyCharges, TotalCharges columns.
// - Leakage per customer = tenure*MonthlyCharges - TotalCharges; negative
//   values (overpayment) stay in the totals, only the positive count filters.
// - Set CONFIG_PATH to point at a YAML config file (default ./config.yml,
//   optional; built-in defaults apply when absent).

func main() {
	args := os.Args
	// Initialize slog logger (text to stderr)
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(h))

	if len(args) > 1 {
		sub := args[1]
		rest := append([]string{}, args[2:]...)
		switch sub {
		case "detect":
			if err := cmddetect.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		case "web":
			if err := cmdweb.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		default:
			fmt.Fprintln(os.Stderr, "usage: revenue-leakage [detect] | web [-addr :8080]\nENV: set CONFIG_PATH to point to a YAML config file (default ./config.yml)")
			os.Exit(2)
		}
	}

	// No arguments runs the one-shot detection with defaults.
	if err := cmddetect.Run(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
