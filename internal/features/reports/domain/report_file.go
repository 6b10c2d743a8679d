package domain

import (
	"fmt"
	"regexp"
	"time"
)

// ReportSheet is the worksheet the rows are written to.
const ReportSheet = "Sheet1"

// ReportColumns is the spreadsheet header.
var ReportColumns = []string{"codigo_cupom", "valor_total", "vezes_usado"}

var reportFilePattern = regexp.MustCompile(`^cupons_dia_\d{4}-\d{2}-\d{2}_\d{6}\.xlsx$`)

// ReportFileName names the spreadsheet after the first report day and the generation time (HHMMSS, UTC-3).
func ReportFileName(startDate string, generatedAt time.Time) string {
	return fmt.Sprintf("cupons_dia_%s_%s.xlsx", startDate, generatedAt.In(BusinessLocation).Format("150405"))
}

// IsReportFileName reports whether name looks like a file produced by ReportFileName.
func IsReportFileName(name string) bool {
	return reportFilePattern.MatchString(name)
}
