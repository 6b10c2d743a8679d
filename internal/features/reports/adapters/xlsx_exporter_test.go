package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"coupon-report/internal/features/reports/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 10, 17, 30, 15, 0, time.UTC)
}

func TestXLSXExporter_Export(t *testing.T) {
	dir := t.TempDir()
	exporter := NewXLSXExporter(dir)
	exporter.now = fixedClock

	rows := []domain.AggregateRow{
		{Code: "MDM", TotalValue: decimal.RequireFromString("200.5"), UsageCount: 3},
		{Code: "ABC10", TotalValue: decimal.RequireFromString("90"), UsageCount: 1},
		{Code: "FREE10", TotalValue: decimal.Zero, UsageCount: 2},
	}

	path, err := exporter.Export(context.Background(), "2024-03-10", rows)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cupons_dia_2024-03-10_143015.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(domain.ReportSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"codigo_cupom", "valor_total", "vezes_usado"},
		{"MDM", "200.5", "3"},
		{"ABC10", "90", "1"},
		{"FREE10", "0", "2"},
	}, got)

	assert.Equal(t, []string{domain.ReportSheet}, f.GetSheetList())
}

func TestXLSXExporter_Export_WriteFailed(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	exporter := NewXLSXExporter(blocker)
	exporter.now = fixedClock

	path, err := exporter.Export(context.Background(), "2024-03-10", []domain.AggregateRow{
		{Code: "MDM", TotalValue: decimal.NewFromInt(1), UsageCount: 1},
	})

	assert.Empty(t, path)
	assert.ErrorIs(t, err, domain.ErrWriteFailed)
}

func TestXLSXExporter_Export_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewXLSXExporter(dir).Export(ctx, "2024-03-10", nil)
	assert.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
