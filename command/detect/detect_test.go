package detect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRun writes an input CSV and a config pointing at it, wiring CONFIG_PATH.
// Returns the output directory the run will write into.
func setupRun(t *testing.T, csvBody string) string {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "customers.csv")
	outDir := filepath.Join(dir, "output")
	require.NoError(t, os.WriteFile(input, []byte(csvBody), 0o644))

	cfgPath := filepath.Join(dir, "config.yml")
	cfgBody := fmt.Sprintf("data:\n  input: %s\n  output_dir: %s\n", input, outDir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgBody), 0o644))
	t.Setenv("CONFIG_PATH", cfgPath)
	return outDir
}

func TestRunWritesHistogramAndTable(t *testing.T) {
	outDir := setupRun(t, strings.Join([]string{
		"customerID,tenure,MonthlyCharges,TotalCharges",
		"C001,10,50,400",
		"C002,5,20,150",
		"C003,12,30,360",
		"",
	}, "\n"))

	require.NoError(t, Run(nil))

	hist := filepath.Join(outDir, "revenue_leakage_hist.png")
	fi, err := os.Stat(hist)
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(0))

	b, err := os.ReadFile(filepath.Join(outDir, "leakage_by_customer.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "C001,10,50,400,500,100", lines[1])
	assert.Equal(t, "C002,5,20,150,100,-50", lines[2])
	assert.Equal(t, "C003,12,30,360,360,0", lines[3])
}

func TestRunRejectsArguments(t *testing.T) {
	require.Error(t, Run([]string{"extra"}))
}

func TestRunMissingInputFile(t *testing.T) {
	outDir := setupRun(t, "")
	require.NoError(t, os.Remove(filepath.Join(filepath.Dir(outDir), "customers.csv")))

	err := Run(nil)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestRunEmptyDataset(t *testing.T) {
	outDir := setupRun(t, "customerID,tenure,MonthlyCharges,TotalCharges\n")

	err := Run(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty dataset")

	// Nothing is written when the run aborts
	_, statErr := os.Stat(filepath.Join(outDir, "revenue_leakage_hist.png"))
	assert.True(t, os.IsNotExist(statErr))
}
