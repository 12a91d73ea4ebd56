package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid period")

// DefaultLookback is the window adapters query when none is given.
const DefaultLookback = 30 * 24 * time.Hour

// DateFormat is the day layout used on every platform wire format.
const DateFormat = "2006-01-02"

// DateRange is an inclusive window of whole days.
type DateRange struct {
	Start time.Time `json:"from"`
	End   time.Time `json:"to"`
}

// DefaultDateRange returns the trailing 30 days ending at now.
func DefaultDateRange(now time.Time) DateRange {
	return DateRange{Start: now.Add(-DefaultLookback), End: now}
}

// ResolveDateRange returns *dr, or the default window when dr is nil.
func ResolveDateRange(dr *DateRange, now time.Time) DateRange {
	if dr == nil {
		return DefaultDateRange(now)
	}
	return *dr
}

// Validate checks that the window is not inverted.
func (d DateRange) Validate() error {
	if d.Start.IsZero() || d.End.IsZero() {
		return errors.New("date range requires both bounds")
	}
	if d.End.Before(d.Start) {
		return fmt.Errorf("date range end %s before start %s", d.EndDay(), d.StartDay())
	}
	return nil
}

func (d DateRange) StartDay() string { return d.Start.UTC().Format(DateFormat) }
func (d DateRange) EndDay() string   { return d.End.UTC().Format(DateFormat) }

// Period is a dashboard reporting window.
type Period string

const (
	Period7d  Period = "7d"
	Period30d Period = "30d"
	Period90d Period = "90d"
)

// ParsePeriod validates p. An empty value means 30d.
func ParsePeriod(p string) (Period, error) {
	switch Period(p) {
	case "":
		return Period30d, nil
	case Period7d, Period30d, Period90d:
		return Period(p), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, p)
	}
}

// Days returns the number of days the period covers, or 0 if p is not a
// known period.
func (p Period) Days() int {
	switch p {
	case Period7d:
		return 7
	case Period30d:
		return 30
	case Period90d:
		return 90
	default:
		return 0
	}
}

// DateRange returns the window covered by p ending at now.
func (p Period) DateRange(now time.Time) DateRange {
	return DateRange{Start: now.AddDate(0, 0, -p.Days()), End: now}
}
