package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHistogramCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "revenue_leakage_hist.png")
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	require.NoError(t, WriteHistogram([]float64{100, -50, 0, 25, 25, 300}, 15, path))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(0))
}

func TestWriteHistogramOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, WriteHistogram([]float64{1, 2, 3}, 5, path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(b))
	// PNG magic bytes
	require.GreaterOrEqual(t, len(b), 4)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, b[:4])
}

func TestWriteHistogramUnwritablePath(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission checks are bypassed when running as root")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	err := WriteHistogram([]float64{1, 2, 3}, 5, filepath.Join(dir, "sub", "hist.png"))
	require.Error(t, err)
}
