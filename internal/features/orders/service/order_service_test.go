package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"coupon-report/internal/features/orders/domain"
	"coupon-report/internal/features/orders/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderProvider is a mock implementation of ports.OrderProvider.
type MockOrderProvider struct {
	mock.Mock
}

func (m *MockOrderProvider) ListOrders(ctx context.Context, query ports.ListOrdersQuery) ([]domain.Order, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

var (
	windowFrom = time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC)
	windowTo   = time.Date(2024, 3, 11, 2, 59, 59, 0, time.UTC)
)

func pageQuery(status domain.OrderStatus, page int) ports.ListOrdersQuery {
	return ports.ListOrdersQuery{
		Status:        status,
		PaymentStatus: domain.PaymentStatusPaid,
		CreatedAtMin:  windowFrom,
		CreatedAtMax:  windowTo,
		Page:          page,
		PerPage:       PageSize,
	}
}

func paidOrder(id int64, createdAt time.Time) domain.Order {
	return domain.Order{ID: id, CreatedAt: createdAt, PaymentStatus: domain.PaymentStatusPaid}
}

func fullPage(firstID int64) []domain.Order {
	page := make([]domain.Order, PageSize)
	for i := range page {
		page[i] = paidOrder(firstID+int64(i), windowFrom.Add(time.Hour))
	}
	return page
}

func TestOrderService_FetchPaidOrders_Paginates(t *testing.T) {
	provider := new(MockOrderProvider)
	ctx := context.Background()

	provider.On("ListOrders", ctx, pageQuery(domain.OrderStatusOpen, 1)).Return(fullPage(1), nil).Once()
	provider.On("ListOrders", ctx, pageQuery(domain.OrderStatusOpen, 2)).Return([]domain.Order{
		paidOrder(1000, windowTo),
	}, nil).Once()
	provider.On("ListOrders", ctx, pageQuery(domain.OrderStatusClosed, 1)).Return(fullPage(2000), nil).Once()
	provider.On("ListOrders", ctx, pageQuery(domain.OrderStatusClosed, 2)).Return([]domain.Order{}, nil).Once()

	svc := NewOrderService(provider, nil)
	orders, err := svc.FetchPaidOrders(ctx, windowFrom, windowTo)

	require.NoError(t, err)
	assert.Len(t, orders, 2*PageSize+1)
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, int64(1000), orders[PageSize].ID)
	assert.Equal(t, int64(2000), orders[PageSize+1].ID)
	provider.AssertExpectations(t)
}

func TestOrderService_FetchPaidOrders_FiltersClientSide(t *testing.T) {
	provider := new(MockOrderProvider)
	ctx := context.Background()

	// 1 and 5 sit on the window bounds; 2 and 3 fall just outside; 4 is unpaid.
	unpaid := paidOrder(4, windowFrom)
	unpaid.PaymentStatus = "pending"

	provider.On("ListOrders", ctx, pageQuery(domain.OrderStatusOpen, 1)).Return([]domain.Order{
		paidOrder(1, windowFrom),
		paidOrder(2, windowFrom.Add(-time.Second)),
		paidOrder(3, windowTo.Add(time.Millisecond)),
		unpaid,
		paidOrder(5, windowTo),
	}, nil).Once()

	svc := NewOrderService(provider, []domain.OrderStatus{domain.OrderStatusOpen})
	orders, err := svc.FetchPaidOrders(ctx, windowFrom, windowTo)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, int64(5), orders[1].ID)
	provider.AssertExpectations(t)
}

func TestOrderService_FetchPaidOrders_AbortsOnError(t *testing.T) {
	provider := new(MockOrderProvider)
	ctx := context.Background()

	fetchErr := &domain.FetchError{StatusCode: 500, Body: "boom"}
	provider.On("ListOrders", ctx, pageQuery(domain.OrderStatusOpen, 1)).Return(fullPage(1), nil).Once()
	provider.On("ListOrders", ctx, pageQuery(domain.OrderStatusOpen, 2)).Return(nil, fetchErr).Once()

	svc := NewOrderService(provider, nil)
	orders, err := svc.FetchPaidOrders(ctx, windowFrom, windowTo)

	assert.Nil(t, orders)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Contains(t, err.Error(), "status open, page 2")
	provider.AssertNotCalled(t, "ListOrders", ctx, pageQuery(domain.OrderStatusClosed, 1))
	provider.AssertExpectations(t)
}

func TestOrderService_FetchPaidOrders_ContextCancelled(t *testing.T) {
	provider := new(MockOrderProvider)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewOrderService(provider, nil)
	_, err := svc.FetchPaidOrders(ctx, windowFrom, windowTo)

	assert.True(t, errors.Is(err, context.Canceled))
	provider.AssertNotCalled(t, "ListOrders", mock.Anything, mock.Anything)
}

func TestNewOrderService_DefaultStatuses(t *testing.T) {
	svc := NewOrderService(new(MockOrderProvider), nil)
	assert.Equal(t, DefaultStatuses, svc.statuses)
}
