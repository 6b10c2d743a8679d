package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultAllowList holds the coupon codes always accepted.
var DefaultAllowList = []string{"MDM"}

// DefaultSuffix marks the family of percentage codes ("ABC10", "VERAO10", ...).
const DefaultSuffix = "10"

// CouponPolicy decides which coupon codes count for the report:
// members of the allow-list, or codes ending with the suffix.
type CouponPolicy struct {
	allow  map[string]struct{}
	suffix string
}

// NewCouponPolicy builds a policy. Blank allow-list entries are ignored.
func NewCouponPolicy(allowList []string, suffix string) CouponPolicy {
	allow := make(map[string]struct{}, len(allowList))
	for _, code := range allowList {
		code = strings.TrimSpace(code)
		if code != "" {
			allow[code] = struct{}{}
		}
	}
	return CouponPolicy{allow: allow, suffix: suffix}
}

// DefaultCouponPolicy is the policy used when nothing is configured.
func DefaultCouponPolicy() CouponPolicy {
	return NewCouponPolicy(DefaultAllowList, DefaultSuffix)
}

// Accepts reports whether code counts for the report.
func (p CouponPolicy) Accepts(code string) bool {
	if code == "" {
		return false
	}
	if _, ok := p.allow[code]; ok {
		return true
	}
	return p.suffix != "" && strings.HasSuffix(code, p.suffix)
}

// AcceptedCouponRecord is one order counted toward a coupon.
type AcceptedCouponRecord struct {
	Code     string
	NetValue decimal.Decimal
	OrderID  int64
}

// AggregateRow is one line of the report.
type AggregateRow struct {
	Code       string          `json:"codigo_cupom"`
	TotalValue decimal.Decimal `json:"valor_total"`
	UsageCount int             `json:"vezes_usado"`
}
