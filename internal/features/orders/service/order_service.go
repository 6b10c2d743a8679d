package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coupon-report/internal/core/logger"
	"coupon-report/internal/features/orders/domain"
	"coupon-report/internal/features/orders/ports"

	"go.uber.org/zap"
)

// PageSize is the number of orders requested per page.
const PageSize = 200

// ErrNoStatuses is returned when the service has no status partition to walk.
var ErrNoStatuses = errors.New("no order status partitions configured")

// DefaultStatuses are the partitions an order can live in while still counting for reports.
var DefaultStatuses = []domain.OrderStatus{domain.OrderStatusOpen, domain.OrderStatusClosed}

// OrderService walks the paged order listing and keeps paid orders created inside a window.
type OrderService struct {
	// provider is the interface for fetching order pages from the platform.
	provider ports.OrderProvider
	// statuses are the lifecycle partitions queried one after the other.
	statuses []domain.OrderStatus
}

// NewOrderService creates a new instance of OrderService.
// An empty statuses list falls back to DefaultStatuses.
func NewOrderService(provider ports.OrderProvider, statuses []domain.OrderStatus) *OrderService {
	if len(statuses) == 0 {
		statuses = DefaultStatuses
	}
	return &OrderService{
		provider: provider,
		statuses: statuses,
	}
}

// FetchPaidOrders returns every paid order created in [from, to], across all status partitions.
// Any failed page aborts the whole fetch; no partial result is returned.
func (s *OrderService) FetchPaidOrders(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	if len(s.statuses) == 0 {
		return nil, ErrNoStatuses
	}

	var orders []domain.Order

	for _, status := range s.statuses {
		kept, err := s.fetchPartition(ctx, status, from, to)
		if err != nil {
			return nil, err
		}
		orders = append(orders, kept...)
	}

	return orders, nil
}

// fetchPartition pages through one status partition in increasing page order.
func (s *OrderService) fetchPartition(ctx context.Context, status domain.OrderStatus, from, to time.Time) ([]domain.Order, error) {
	var kept []domain.Order

	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		batch, err := s.provider.ListOrders(ctx, ports.ListOrdersQuery{
			Status:        status,
			PaymentStatus: domain.PaymentStatusPaid,
			CreatedAtMin:  from,
			CreatedAtMax:  to,
			Page:          page,
			PerPage:       PageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("status %s, page %d: %w", status, page, err)
		}

		for _, order := range batch {
			if !inWindow(order.CreatedAt, from, to) || !order.IsPaid() {
				logger.Get().Debug("Discarding order outside report window",
					zap.Int64("order_id", order.ID),
					zap.Time("created_at", order.CreatedAt),
					zap.String("payment_status", order.PaymentStatus),
				)
				continue
			}
			kept = append(kept, order)
		}

		logger.Get().Debug("Fetched orders page",
			zap.String("status", string(status)),
			zap.Int("page", page),
			zap.Int("received", len(batch)),
		)

		if len(batch) < PageSize {
			return kept, nil
		}
	}
}

// inWindow is inclusive on both ends.
func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
