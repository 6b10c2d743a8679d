package ports

import (
	"context"
	"time"

	orderdomain "coupon-report/internal/features/orders/domain"
	"coupon-report/internal/features/reports/domain"
)

// ReportRunner defines the primary port the shells drive.
type ReportRunner interface {
	// Trigger starts a generation in the background; it fails fast when one is running.
	Trigger(startDate, endDate string) error
	// Status returns the latest generation status.
	Status(ctx context.Context) (domain.Status, error)
}

// OrderFetcher retrieves paid orders created inside a UTC window.
type OrderFetcher interface {
	FetchPaidOrders(ctx context.Context, from, to time.Time) ([]orderdomain.Order, error)
}

// ReportExporter writes the aggregated rows and returns the written file path.
type ReportExporter interface {
	Export(ctx context.Context, startDate string, rows []domain.AggregateRow) (string, error)
}

// StatusStore holds the latest status. Implementations must be safe for concurrent use.
type StatusStore interface {
	Save(ctx context.Context, status domain.Status) error
	Get(ctx context.Context) (domain.Status, error)
}
