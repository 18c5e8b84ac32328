package leakage

import (
	"errors"

	lo "github.com/samber/lo"
)

// CustomerRecord is one row of the subscription dataset as loaded from CSV.
type CustomerRecord struct {
	CustomerID     string
	Tenure         int     // months subscribed
	MonthlyCharges float64 // recurring charge amount
	TotalCharges   float64 // actual amount paid to date
}

// Customer is a CustomerRecord annotated with its derived revenue fields.
type Customer struct {
	CustomerRecord
	ExpectedRevenue float64 // Tenure * MonthlyCharges, constant charge assumed
	Leakage         float64 // ExpectedRevenue - TotalCharges; positive = underpayment
}

// Summary holds dataset-wide leakage statistics.
type Summary struct {
	TotalRecords         int     `json:"total_records"`
	TotalLeakage         float64 `json:"total_leakage"`
	AverageLeakage       float64 `json:"average_leakage"`
	PositiveLeakageCount int     `json:"positive_leakage_count"`
}

// ErrEmptyDataset is returned by Summarize when there are no records to
// aggregate; the average would otherwise be a division by zero.
var ErrEmptyDataset = errors.New("leakage: empty dataset, cannot compute average")

// Compute annotates each record with its expected revenue and leakage.
// Values are exact products/differences of the inputs; no rounding, and
// negative leakage (overpayment) is kept as-is.
func Compute(records []CustomerRecord) []Customer {
	return lo.Map(records, func(r CustomerRecord, _ int) Customer {
		expected := float64(r.Tenure) * r.MonthlyCharges
		return Customer{
			CustomerRecord:  r,
			ExpectedRevenue: expected,
			Leakage:         expected - r.TotalCharges,
		}
	})
}

// Summarize aggregates leakage statistics across the whole dataset.
// TotalLeakage is the signed sum: overpaying customers reduce it. Only
// PositiveLeakageCount filters to strictly positive leakage.
func Summarize(customers []Customer) (Summary, error) {
	if len(customers) == 0 {
		return Summary{}, ErrEmptyDataset
	}
	total := lo.SumBy(customers, func(c Customer) float64 { return c.Leakage })
	positive := lo.CountBy(customers, func(c Customer) bool { return c.Leakage > 0 })
	return Summary{
		TotalRecords:         len(customers),
		TotalLeakage:         total,
		AverageLeakage:       total / float64(len(customers)),
		PositiveLeakageCount: positive,
	}, nil
}

// Leakages extracts the leakage column, in record order.
func Leakages(customers []Customer) []float64 {
	return lo.Map(customers, func(c Customer, _ int) float64 { return c.Leakage })
}
