package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format accepted from the shells.
const DateLayout = "2006-01-02"

// BusinessLocation is the store's fixed UTC-3 offset. It never follows the machine locale.
var BusinessLocation = time.FixedZone("UTC-3", -3*60*60)

// DateRange is an inclusive report window.
// StartDate and EndDate keep the calendar days; Start and End are the matching UTC instants.
type DateRange struct {
	StartDate string
	EndDate   string
	Start     time.Time
	End       time.Time
}

// ParseDateRange turns two YYYY-MM-DD days, read in BusinessLocation, into a UTC window
// running from midnight of the first day to 23:59:59 of the last.
func ParseDateRange(startDate, endDate string) (DateRange, error) {
	startDay, err := parseDay(startDate)
	if err != nil {
		return DateRange{}, err
	}
	endDay, err := parseDay(endDate)
	if err != nil {
		return DateRange{}, err
	}

	start := startDay.UTC()
	end := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 23, 59, 59, 0, BusinessLocation).UTC()

	if start.After(end) {
		return DateRange{}, fmt.Errorf("%w: %s is after %s", ErrInvalidDateRange, startDate, endDate)
	}

	return DateRange{
		StartDate: startDay.Format(DateLayout),
		EndDate:   endDay.Format(DateLayout),
		Start:     start,
		End:       end,
	}, nil
}

// Contains reports whether t falls inside the window, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func parseDay(value string) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), BusinessLocation)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, value)
	}
	return day, nil
}
