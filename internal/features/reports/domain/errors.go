package domain

import "errors"

var (
	// ErrInvalidDateFormat is returned when a date is not a YYYY-MM-DD calendar day.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	// ErrInvalidDateRange is returned when the start day comes after the end day.
	ErrInvalidDateRange = errors.New("start date is after end date")
	// ErrMissingDates is returned when a shell did not supply both days.
	ErrMissingDates = errors.New("both dates are required")
	// ErrNoData signals that no order passed coupon acceptance. It is an outcome, not a failure.
	ErrNoData = errors.New("no coupons found in period")
	// ErrWriteFailed is returned when the spreadsheet cannot be written.
	ErrWriteFailed = errors.New("report write failed")
	// ErrReportInProgress is returned when a report is triggered while another one runs.
	ErrReportInProgress = errors.New("a report is already being generated")
)
