package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"revenue-leakage/domain/leakage"
)

// LoadCustomers reads the subscription dataset from a CSV file, in file order.
// Expected headers (case-insensitive): customerID, tenure, MonthlyCharges,
// TotalCharges. Extra columns are ignored. Any missing required column or
// non-numeric value is an error; there is no NaN coercion.
func LoadCustomers(path string) ([]leakage.CustomerRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	head, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	idx := indexMap(head)
	required := []string{"customerid", "tenure", "monthlycharges", "totalcharges"}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%s missing column %s", path, col)
		}
	}

	var res []leakage.CustomerRecord
	row := 1 // header line
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		row++
		tenure, err := strconv.Atoi(strings.TrimSpace(rec[idx["tenure"]]))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: non-numeric tenure %q", path, row, rec[idx["tenure"]])
		}
		monthly, err := strconv.ParseFloat(strings.TrimSpace(rec[idx["monthlycharges"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: non-numeric MonthlyCharges %q", path, row, rec[idx["monthlycharges"]])
		}
		total, err := strconv.ParseFloat(strings.TrimSpace(rec[idx["totalcharges"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: non-numeric TotalCharges %q", path, row, rec[idx["totalcharges"]])
		}
		res = append(res, leakage.CustomerRecord{
			CustomerID:     rec[idx["customerid"]],
			Tenure:         tenure,
			MonthlyCharges: monthly,
			TotalCharges:   total,
		})
	}
	return res, nil
}

// WriteCustomerLeakage writes the annotated per-customer table.
// Headers: customer_id, tenure, monthly_charges, total_charges, expected_revenue, leakage
func WriteCustomerLeakage(path string, customers []leakage.Customer) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	headers := []string{"customer_id", "tenure", "monthly_charges", "total_charges", "expected_revenue", "leakage"}
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, c := range customers {
		row := []string{
			c.CustomerID,
			strconv.Itoa(c.Tenure),
			formatAmount(c.MonthlyCharges),
			formatAmount(c.TotalCharges),
			formatAmount(c.ExpectedRevenue),
			formatAmount(c.Leakage),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func indexMap(headers []string) map[string]int {
	m := map[string]int{}
	for i, h := range headers {
		m[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return m
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
