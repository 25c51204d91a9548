package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestCSVSourceFetch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dim_order.csv", "order_id,order_status\na,delivered\nb,shipped\n")

	src := NewCSVSource(dir)
	tbl, err := src.Fetch(context.Background(), "dim_order")
	require.NoError(t, err)
	assert.Equal(t, []string{"order_id", "order_status"}, tbl.Header)
	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, []string{"a", "b"}, tbl.Column("order_id"))
}

func TestCSVSourceMissingFile(t *testing.T) {
	src := NewCSVSource(t.TempDir())
	tbl, err := src.Fetch(context.Background(), "dim_order")
	require.Error(t, err)
	assert.True(t, tbl.IsEmpty())
}

func TestCSVSourceRaggedRows(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dim_payments.csv", "order_id,payment_value\na,10.5\nb\n")

	src := NewCSVSource(dir)
	tbl, err := src.Fetch(context.Background(), "dim_payments")
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, []string{"10.5", ""}, tbl.Column("payment_value"))
}

func TestCSVSourceEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dim_sellers.csv", "")

	src := NewCSVSource(dir)
	tbl, err := src.Fetch(context.Background(), "dim_sellers")
	require.NoError(t, err)
	assert.True(t, tbl.IsEmpty())
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", formatValue(nil))
	assert.Equal(t, "abc", formatValue("abc"))
	assert.Equal(t, "abc", formatValue([]byte("abc")))
	assert.Equal(t, "42", formatValue(int64(42)))
	assert.Equal(t, "10.5", formatValue(10.5))
}
