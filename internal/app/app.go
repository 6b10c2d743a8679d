package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"coupon-report/internal/core/cache"
	"coupon-report/internal/core/config"
	"coupon-report/internal/core/logger"
	orderadapter "coupon-report/internal/features/orders/adapters"
	orderdomain "coupon-report/internal/features/orders/domain"
	orderservice "coupon-report/internal/features/orders/service"
	reportadapters "coupon-report/internal/features/reports/adapters"
	"coupon-report/internal/features/reports/domain"
	"coupon-report/internal/features/reports/ports"
	reportservice "coupon-report/internal/features/reports/service"

	"go.uber.org/zap"
)

// App is the wired report pipeline shared by the HTTP and CLI shells.
type App struct {
	// Orders is the Nuvemshop order API adapter.
	Orders *orderadapter.NuvemshopAdapter
	// Reports runs one generation synchronously.
	Reports *reportservice.ReportService
	// Runner runs generations in the background, one at a time.
	Runner *reportservice.Runner
	// OutputDir is where spreadsheets are written.
	OutputDir string

	cache cache.Cache
}

// New wires the pipeline from cfg. The status store is Redis-backed when RedisURL is set.
func New(cfg *config.AppConfig) (*App, error) {
	if err := os.MkdirAll(cfg.Report.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir %s: %w", cfg.Report.OutputDir, err)
	}

	orders := orderadapter.NewNuvemshopAdapter(cfg.Nuvemshop, cfg.HTTP)
	fetcher := orderservice.NewOrderService(orders, orderStatuses(cfg.Report.OrderStatuses))
	exporter := reportadapters.NewXLSXExporter(cfg.Report.OutputDir)
	policy := domain.NewCouponPolicy(cfg.Report.CouponAllowList, cfg.Report.CouponSuffix)
	reports := reportservice.NewReportService(fetcher, exporter, policy)

	a := &App{
		Orders:    orders,
		Reports:   reports,
		OutputDir: cfg.Report.OutputDir,
	}

	var store ports.StatusStore
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		a.cache = redisCache
		store = reportadapters.NewRedisStatusStore(redisCache)
	} else {
		store = reportadapters.NewMemoryStatusStore()
	}
	a.Runner = reportservice.NewRunner(reports, store)

	return a, nil
}

// CheckDependencies verifies the order API and, when configured, Redis.
func (a *App) CheckDependencies(ctx context.Context) error {
	if err := a.Orders.HealthCheck(ctx); err != nil {
		return fmt.Errorf("nuvemshop health check failed: %w", err)
	}
	if a.cache != nil {
		if err := a.cache.Ping(ctx); err != nil {
			return fmt.Errorf("redis health check failed: %w", err)
		}
	}
	return nil
}

// Close waits for a running generation and releases the cache connection.
func (a *App) Close() error {
	a.Runner.Wait()
	if a.cache != nil {
		return a.cache.Close()
	}
	return nil
}

func orderStatuses(values []string) []orderdomain.OrderStatus {
	statuses := make([]orderdomain.OrderStatus, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		statuses = append(statuses, orderdomain.OrderStatus(v))
	}
	if len(statuses) == 0 {
		logger.Get().Warn("No order status configured, using defaults",
			zap.Any("statuses", orderservice.DefaultStatuses))
	}
	return statuses
}
