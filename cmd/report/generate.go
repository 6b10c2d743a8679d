package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"coupon-report/internal/app"
	"coupon-report/internal/core/config"
	"coupon-report/internal/core/logger"
	"coupon-report/internal/features/reports/domain"
	"coupon-report/internal/features/reports/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errReportFailed = errors.New("report generation failed")

func newGenerateCmd() *cobra.Command {
	var startDate, endDate string

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate the coupon report for an inclusive range of days",
		Example: "  coupon-report generate --start 2024-03-10 --end 2024-03-12",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgDir)
			if err != nil {
				return fmt.Errorf("cannot load config: %w", err)
			}

			if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
				return fmt.Errorf("cannot init logger: %w", err)
			}
			defer logger.Sync()

			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return generate(ctx, cmd.OutOrStdout(), a.Reports, startDate, endDate)
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "first day of the report, YYYY-MM-DD")
	cmd.Flags().StringVar(&endDate, "end", "", "last day of the report, YYYY-MM-DD")

	return cmd
}

// generate runs one report and prints its status message.
// Only SUCCESS and NO_DATA count as a successful run.
func generate(ctx context.Context, out io.Writer, gen service.Generator, startDate, endDate string) error {
	result, err := gen.Generate(ctx, startDate, endDate)
	status := service.StatusFor(startDate, endDate, result, err)

	fmt.Fprintln(out, status.Message)

	switch status.State {
	case domain.StateSuccess:
		logger.Get().Info("Report generated", zap.String("file", status.File), zap.Int("coupons", len(status.Rows)))
		return nil
	case domain.StateNoData:
		return nil
	}

	logger.Get().Error("Report generation failed", zap.String("state", string(status.State)), zap.Error(err))
	return errReportFailed
}
