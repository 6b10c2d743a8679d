package service

import (
	"fmt"
	"sort"
	"strings"

	orderdomain "coupon-report/internal/features/orders/domain"
	"coupon-report/internal/features/reports/domain"

	"github.com/shopspring/decimal"
)

// Aggregate turns raw orders into report rows.
// Only the first coupon of each order is considered, each order counts once,
// and rows come out by total value, highest first. Groups with equal totals keep code order.
// ErrNoData is returned when no order passes the policy.
func Aggregate(orders []orderdomain.Order, policy domain.CouponPolicy) ([]domain.AggregateRow, error) {
	records, err := acceptedRecords(orders, policy)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrNoData
	}

	rows := group(records)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalValue.GreaterThan(rows[j].TotalValue)
	})

	return rows, nil
}

// acceptedRecords applies the coupon policy, computes net values and drops repeated orders.
func acceptedRecords(orders []orderdomain.Order, policy domain.CouponPolicy) ([]domain.AcceptedCouponRecord, error) {
	seen := make(map[int64]struct{}, len(orders))
	records := make([]domain.AcceptedCouponRecord, 0, len(orders))

	for _, order := range orders {
		coupon, ok := order.FirstCoupon()
		if !ok || !policy.Accepts(coupon.Code) {
			continue
		}

		net, err := netValue(order)
		if err != nil {
			return nil, err
		}

		if _, dup := seen[order.ID]; dup {
			continue
		}
		seen[order.ID] = struct{}{}

		records = append(records, domain.AcceptedCouponRecord{
			Code:     coupon.Code,
			NetValue: net,
			OrderID:  order.ID,
		})
	}

	return records, nil
}

// group sums records per code. Groups are emitted in ascending code order.
func group(records []domain.AcceptedCouponRecord) []domain.AggregateRow {
	byCode := make(map[string]*domain.AggregateRow)
	for _, r := range records {
		row, ok := byCode[r.Code]
		if !ok {
			row = &domain.AggregateRow{Code: r.Code, TotalValue: decimal.Zero}
			byCode[r.Code] = row
		}
		row.TotalValue = row.TotalValue.Add(r.NetValue)
		row.UsageCount++
	}

	codes := make([]string, 0, len(byCode))
	for code := range byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	rows := make([]domain.AggregateRow, 0, len(codes))
	for _, code := range codes {
		rows = append(rows, *byCode[code])
	}
	return rows
}

// netValue is subtotal minus discount.
func netValue(order orderdomain.Order) (decimal.Decimal, error) {
	subtotal, err := parseAmount(order.Subtotal)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: order %d: subtotal: %v", orderdomain.ErrMalformedOrder, order.ID, err)
	}
	discount, err := parseAmount(order.Discount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: order %d: discount: %v", orderdomain.ErrMalformedOrder, order.ID, err)
	}
	return subtotal.Sub(discount), nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("missing amount")
	}
	return decimal.NewFromString(raw)
}
