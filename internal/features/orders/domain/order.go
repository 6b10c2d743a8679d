package domain

import (
	"errors"
	"fmt"
	"time"
)

// PaymentStatusPaid is the only payment status that counts for reports.
const PaymentStatusPaid = "paid"

// OrderStatus is an order-lifecycle partition of the order listing.
type OrderStatus string

const (
	// OrderStatusOpen holds orders still being fulfilled.
	OrderStatusOpen OrderStatus = "open"
	// OrderStatusClosed holds fulfilled orders.
	OrderStatusClosed OrderStatus = "closed"
	// OrderStatusCancelled holds cancelled orders.
	OrderStatusCancelled OrderStatus = "cancelled"
)

var (
	// ErrFetchFailed is returned when the order API answers with a non-success status
	// or cannot be reached at all.
	ErrFetchFailed = errors.New("order fetch failed")
	// ErrMalformedOrder is returned when an order record cannot be interpreted.
	ErrMalformedOrder = errors.New("malformed order")
)

// FetchError carries the terminal response of a failed fetch.
type FetchError struct {
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	// Body is the response body as returned by the API.
	Body string
	// Err is the transport error when no response was received.
	Err error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", ErrFetchFailed, e.Err)
	}
	return fmt.Sprintf("%s: status %d: %s", ErrFetchFailed, e.StatusCode, e.Body)
}

// Is makes errors.Is(err, ErrFetchFailed) hold for every FetchError.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// CouponApplication is a coupon applied to an order.
type CouponApplication struct {
	// ID is the coupon id on the platform.
	ID int64 `json:"id"`
	// Code is what the customer typed at checkout.
	Code string `json:"code"`
	// Type is the discount kind (percentage, absolute, shipping).
	Type string `json:"type"`
	// Value is the discount amount or percentage as sent by the platform.
	Value string `json:"value"`
}

// Order is an order as seen by the report pipeline.
type Order struct {
	// ID is the order identity.
	ID int64 `json:"id"`
	// Number is the human-facing order number.
	Number int64 `json:"number"`
	// CreatedAt is the creation instant.
	CreatedAt time.Time `json:"created_at"`
	// Status is the lifecycle partition the order belongs to.
	Status OrderStatus `json:"status"`
	// PaymentStatus is the platform payment status (paid, pending, ...).
	PaymentStatus string `json:"payment_status"`
	// Subtotal is the raw decimal amount before discounts.
	Subtotal string `json:"subtotal"`
	// Discount is the raw decimal discount amount.
	Discount string `json:"discount"`
	// Coupons lists every coupon applied, in platform order.
	Coupons []CouponApplication `json:"coupon"`
}

// FirstCoupon returns the first applied coupon, if any.
func (o Order) FirstCoupon() (CouponApplication, bool) {
	if len(o.Coupons) == 0 {
		return CouponApplication{}, false
	}
	return o.Coupons[0], true
}

// IsPaid reports whether the order payment was confirmed.
func (o Order) IsPaid() bool {
	return o.PaymentStatus == PaymentStatusPaid
}
