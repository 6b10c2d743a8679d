package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"coupon-report/internal/core/logger"
	orderdomain "coupon-report/internal/features/orders/domain"
	"coupon-report/internal/features/reports/domain"
	"coupon-report/internal/features/reports/ports"

	"go.uber.org/zap"
)

// Result is a completed report generation.
type Result struct {
	Range domain.DateRange
	Rows  []domain.AggregateRow
	// Path is where the spreadsheet was written.
	Path string
}

// ReportService runs the fetch, aggregate and export pipeline once, in the caller's goroutine.
type ReportService struct {
	fetcher  ports.OrderFetcher
	exporter ports.ReportExporter
	policy   domain.CouponPolicy
}

// NewReportService creates a new ReportService.
func NewReportService(fetcher ports.OrderFetcher, exporter ports.ReportExporter, policy domain.CouponPolicy) *ReportService {
	return &ReportService{
		fetcher:  fetcher,
		exporter: exporter,
		policy:   policy,
	}
}

// Generate builds the coupon report for the inclusive range of calendar days.
// ErrNoData is returned, with no file written, when no order used an accepted coupon.
func (s *ReportService) Generate(ctx context.Context, startDate, endDate string) (*Result, error) {
	if strings.TrimSpace(startDate) == "" || strings.TrimSpace(endDate) == "" {
		return nil, domain.ErrMissingDates
	}

	window, err := domain.ParseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	l := logger.Get().With(
		zap.String("start_date", window.StartDate),
		zap.String("end_date", window.EndDate),
	)

	orders, err := s.fetcher.FetchPaidOrders(ctx, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	l.Info("Orders fetched", zap.Int("orders", len(orders)))

	rows, err := Aggregate(orders, s.policy)
	if err != nil {
		return nil, err
	}
	l.Info("Coupons aggregated", zap.Int("coupons", len(rows)))

	path, err := s.exporter.Export(ctx, window.StartDate, rows)
	if err != nil {
		return nil, err
	}
	l.Info("Report written", zap.String("path", path))

	return &Result{
		Range: window,
		Rows:  rows,
		Path:  path,
	}, nil
}

// StatusFor converts the outcome of a generation into the status shown to the user.
func StatusFor(startDate, endDate string, result *Result, err error) domain.Status {
	if err == nil && result != nil {
		return domain.SuccessStatus(startDate, endDate, filepath.Base(result.Path), result.Rows)
	}

	if errors.Is(err, domain.ErrNoData) {
		return domain.NoDataStatus(startDate, endDate)
	}

	var fetchErr *orderdomain.FetchError
	if errors.As(err, &fetchErr) && fetchErr.StatusCode != 0 {
		return domain.HTTPErrorStatus(startDate, endDate, fetchErr.StatusCode, fetchErr.Body)
	}

	if errors.Is(err, domain.ErrMissingDates) {
		s := domain.ErrorStatus(startDate, endDate, err)
		s.Message = domain.MissingDatesMessage
		return s
	}

	if err == nil {
		err = errors.New("report finished without a result")
	}
	return domain.ErrorStatus(startDate, endDate, err)
}
