package adapters

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"coupon-report/internal/features/reports/domain"
	"coupon-report/internal/features/reports/ports"

	"github.com/xuri/excelize/v2"
)

// XLSXExporter writes report rows to an Excel workbook in a fixed directory.
type XLSXExporter struct {
	dir string
	now func() time.Time
}

var _ ports.ReportExporter = (*XLSXExporter)(nil)

// NewXLSXExporter creates an exporter writing into dir.
func NewXLSXExporter(dir string) *XLSXExporter {
	return &XLSXExporter{dir: dir, now: time.Now}
}

// Dir is the directory reports are written to.
func (e *XLSXExporter) Dir() string {
	return e.dir
}

// Export writes the header and one line per row, in the given order, and returns the file path.
func (e *XLSXExporter) Export(ctx context.Context, startDate string, rows []domain.AggregateRow) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(e.dir, domain.ReportFileName(startDate, e.now()))

	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(domain.ReportColumns))
	for i, col := range domain.ReportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(domain.ReportSheet, "A1", &header); err != nil {
		return "", fmt.Errorf("%w: header: %v", domain.ErrWriteFailed, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
		}
		values := []interface{}{row.Code, row.TotalValue.InexactFloat64(), row.UsageCount}
		if err := f.SetSheetRow(domain.ReportSheet, cell, &values); err != nil {
			return "", fmt.Errorf("%w: row %d: %v", domain.ErrWriteFailed, i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrWriteFailed, path, err)
	}

	return path, nil
}
