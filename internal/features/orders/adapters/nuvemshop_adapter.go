package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"coupon-report/internal/core/config"
	"coupon-report/internal/core/httpclient"
	"coupon-report/internal/features/orders/domain"
	"coupon-report/internal/features/orders/ports"
)

// apiTimeLayout is the timestamp format of the Nuvemshop API ("2013-05-03T15:38:30+0000").
const apiTimeLayout = "2006-01-02T15:04:05-0700"

// queryTimeLayout renders created_at bounds as ISO-8601 UTC.
const queryTimeLayout = "2006-01-02T15:04:05Z"

// maxErrorBody bounds how much of a failed response is kept for the error message.
const maxErrorBody = 64 << 10

// NuvemshopAdapter implements the OrderProvider interface using the Nuvemshop REST API.
type NuvemshopAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the Nuvemshop connection details.
	config config.NuvemshopConfig
}

var _ ports.OrderProvider = (*NuvemshopAdapter)(nil)

// NewNuvemshopAdapter creates a new instance of NuvemshopAdapter.
func NewNuvemshopAdapter(cfg config.NuvemshopConfig, httpCfg config.HTTPConfig) *NuvemshopAdapter {
	return NewNuvemshopAdapterWithClient(cfg, httpclient.NewClient(httpclient.RetryPolicy{
		MaxAttempts:    httpCfg.MaxAttempts,
		Backoff:        httpCfg.RetryBackoff,
		AttemptTimeout: httpCfg.Timeout,
	}))
}

// NewNuvemshopAdapterWithClient creates an adapter on top of an existing client.
func NewNuvemshopAdapterWithClient(cfg config.NuvemshopConfig, client *http.Client) *NuvemshopAdapter {
	return &NuvemshopAdapter{
		client: client,
		config: cfg,
	}
}

// ListOrders fetches one page of the order listing and maps it to domain orders.
func (a *NuvemshopAdapter) ListOrders(ctx context.Context, q ports.ListOrdersQuery) ([]domain.Order, error) {
	params := url.Values{}
	params.Set("per_page", strconv.Itoa(q.PerPage))
	params.Set("page", strconv.Itoa(q.Page))
	if !q.CreatedAtMin.IsZero() {
		params.Set("created_at_min", q.CreatedAtMin.UTC().Format(queryTimeLayout))
	}
	if !q.CreatedAtMax.IsZero() {
		params.Set("created_at_max", q.CreatedAtMax.UTC().Format(queryTimeLayout))
	}
	if q.PaymentStatus != "" {
		params.Set("payment_status", q.PaymentStatus)
	}
	if q.Status != "" {
		params.Set("status", string(q.Status))
	}

	body, err := a.get(ctx, params)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var apiOrders []nuvemshopOrder
	if err := json.Unmarshal(body, &apiOrders); err != nil {
		return nil, fmt.Errorf("%w: failed to decode orders page %d: %v", domain.ErrMalformedOrder, q.Page, err)
	}

	orders := make([]domain.Order, 0, len(apiOrders))
	for _, o := range apiOrders {
		orders = append(orders, mapToDomain(o))
	}

	return orders, nil
}

// HealthCheck verifies that the Nuvemshop API is reachable and the token is valid.
func (a *NuvemshopAdapter) HealthCheck(ctx context.Context) error {
	params := url.Values{}
	params.Set("per_page", "1")

	if _, err := a.get(ctx, params); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// get issues an authenticated GET on the orders endpoint.
// A nil body with a nil error means the requested page is past the last one.
func (a *NuvemshopAdapter) get(ctx context.Context, params url.Values) ([]byte, error) {
	endpoint := a.config.OrdersURL() + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authentication", "bearer "+a.config.Token)
	req.Header.Set("User-Agent", a.config.UserAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if isPastLastPage(resp.StatusCode, raw) {
			return nil, nil
		}
		return nil, &domain.FetchError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.FetchError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	return body, nil
}

// isPastLastPage recognizes the 404 Nuvemshop sends for a page after the last one
// ({"code":404,"message":"Not Found","description":"Last page is 3"}).
func isPastLastPage(status int, body []byte) bool {
	return status == http.StatusNotFound && bytes.Contains(body, []byte("Last page is"))
}

// mapToDomain converts a raw Nuvemshop order into a domain Order.
func mapToDomain(o nuvemshopOrder) domain.Order {
	coupons := make([]domain.CouponApplication, 0, len(o.Coupon))
	for _, c := range o.Coupon {
		coupons = append(coupons, domain.CouponApplication{
			ID:    c.ID,
			Code:  c.Code,
			Type:  c.Type,
			Value: string(c.Value),
		})
	}

	return domain.Order{
		ID:            o.ID,
		Number:        o.Number,
		CreatedAt:     time.Time(o.CreatedAt),
		Status:        domain.OrderStatus(o.Status),
		PaymentStatus: o.PaymentStatus,
		Subtotal:      string(o.Subtotal),
		Discount:      string(o.Discount),
		Coupons:       coupons,
	}
}

// internal structs for mapping

// nuvemshopOrder represents the JSON structure of an order from the Nuvemshop API.
type nuvemshopOrder struct {
	ID            int64      `json:"id"`
	Number        int64      `json:"number"`
	CreatedAt     nsTime     `json:"created_at"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	Subtotal      nsAmount   `json:"subtotal"`
	Discount      nsAmount   `json:"discount"`
	Coupon        []nsCoupon `json:"coupon"`
}

// nsCoupon is one entry of an order's coupon list.
type nsCoupon struct {
	ID    int64    `json:"id"`
	Code  string   `json:"code"`
	Type  string   `json:"type"`
	Value nsAmount `json:"value"`
}

// nsTime handles the API timestamp format.
type nsTime time.Time

// UnmarshalJSON parses "2013-05-03T15:38:30+0000", falling back to RFC 3339.
func (t *nsTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	if s == "null" || s == "" {
		return fmt.Errorf("missing created_at")
	}
	parsed, err := time.Parse(apiTimeLayout, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339Nano, s)
	}
	if err != nil {
		return fmt.Errorf("invalid created_at %q: %w", s, err)
	}
	*t = nsTime(parsed)
	return nil
}

// nsAmount keeps a monetary amount as its decimal text, whether the API sent a string or a number.
type nsAmount string

// UnmarshalJSON accepts "12.50", 12.5 and null (kept empty).
func (a *nsAmount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*a = ""
		return nil
	}
	if strings.HasPrefix(s, "\"") {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*a = nsAmount(strings.TrimSpace(str))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid amount %s: %w", s, err)
	}
	*a = nsAmount(n.String())
	return nil
}
