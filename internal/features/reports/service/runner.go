package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"coupon-report/internal/core/logger"
	"coupon-report/internal/features/reports/domain"
	"coupon-report/internal/features/reports/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Generator runs one report generation synchronously.
type Generator interface {
	Generate(ctx context.Context, startDate, endDate string) (*Result, error)
}

// Runner starts report generations in the background, one at a time.
// A trigger that arrives while a generation holds the permit is rejected, never queued.
type Runner struct {
	generator Generator
	store     ports.StatusStore

	permit  *semaphore.Weighted
	running atomic.Bool
	wg      sync.WaitGroup
}

var _ ports.ReportRunner = (*Runner)(nil)

// NewRunner creates a new Runner.
func NewRunner(generator Generator, store ports.StatusStore) *Runner {
	return &Runner{
		generator: generator,
		store:     store,
		permit:    semaphore.NewWeighted(1),
	}
}

// Trigger validates the days and starts a generation in its own goroutine.
// It returns ErrReportInProgress when a generation is already running.
func (r *Runner) Trigger(startDate, endDate string) error {
	if strings.TrimSpace(startDate) == "" || strings.TrimSpace(endDate) == "" {
		return domain.ErrMissingDates
	}
	if _, err := domain.ParseDateRange(startDate, endDate); err != nil {
		return err
	}

	if !r.permit.TryAcquire(1) {
		return domain.ErrReportInProgress
	}
	r.running.Store(true)

	runID := startDate + "_" + strconv.FormatInt(time.Now().UnixNano(), 36)
	l := logger.ForRun(runID)

	if err := r.store.Save(context.Background(), domain.InProgressStatus(startDate, endDate)); err != nil {
		l.Warn("Failed to publish in-progress status", zap.Error(err))
	}

	r.wg.Add(1)
	go r.run(l, startDate, endDate)

	return nil
}

// Status returns the latest published status. Running reflects whether the trigger is held.
func (r *Runner) Status(ctx context.Context) (domain.Status, error) {
	status, err := r.store.Get(ctx)
	if err != nil {
		return domain.Status{}, fmt.Errorf("service: failed to get status: %w", err)
	}
	status.Running = r.running.Load()
	return status, nil
}

// Wait blocks until every started generation has finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) run(l *zap.Logger, startDate, endDate string) {
	defer r.wg.Done()
	defer func() {
		r.running.Store(false)
		r.permit.Release(1)
	}()

	var status domain.Status
	defer func() {
		if p := recover(); p != nil {
			l.Error("Report generation panicked", zap.Any("panic", p))
			status = domain.ErrorStatus(startDate, endDate, fmt.Errorf("panic: %v", p))
		}
		if err := r.store.Save(context.Background(), status); err != nil {
			l.Error("Failed to publish report status", zap.Error(err))
		}
	}()

	started := time.Now()
	l.Info("Report generation started", zap.String("start_date", startDate), zap.String("end_date", endDate))

	result, err := r.generator.Generate(context.Background(), startDate, endDate)
	status = StatusFor(startDate, endDate, result, err)

	l.Info("Report generation finished",
		zap.String("state", string(status.State)),
		zap.Duration("duration", time.Since(started)),
		zap.NamedError("cause", err),
	)
}
