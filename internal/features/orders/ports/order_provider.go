package ports

import (
	"context"
	"time"

	"coupon-report/internal/features/orders/domain"
)

// ListOrdersQuery selects one page of the order listing.
type ListOrdersQuery struct {
	// Status is the lifecycle partition to list.
	Status domain.OrderStatus
	// PaymentStatus filters on payment state (e.g. "paid").
	PaymentStatus string
	// CreatedAtMin and CreatedAtMax are a coarse server-side creation window.
	CreatedAtMin time.Time
	CreatedAtMax time.Time
	// Page is 1-based.
	Page int
	// PerPage is the page size.
	PerPage int
}

// OrderProvider defines the interface for retrieving orders from the e-commerce platform.
// This is a Secondary Port (Driven Port).
type OrderProvider interface {
	// ListOrders returns one page of orders. An empty slice means there are no more pages.
	ListOrders(ctx context.Context, query ListOrdersQuery) ([]domain.Order, error)
}
