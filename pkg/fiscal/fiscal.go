// Package fiscal maps calendar dates onto the club's accounting periods:
// calendar years, fiscal years starting in July, and month buckets keyed
// as "YYYY-MM".
package fiscal

import (
	"fmt"
	"math"
	"time"
)

// StartMonth is the first month of the club's fiscal year.
const StartMonth = time.July

// FirstTrackedYear is the calendar year of the first tracked fiscal period
// (July 2025). Dues history before it is not considered reliable.
const FirstTrackedYear = 2025

// avgMonthHours is the fixed average month length used for elapsed-month
// arithmetic. This deliberately reproduces the historical figures: it drifts
// against true calendar months near month boundaries, so callers that need
// exact calendar months must not use MonthsSince.
const avgMonthHours = 30.44 * 24

// YearStart returns the first day of the fiscal year that begins in the
// given calendar year.
func YearStart(year int) time.Time {
	return time.Date(year, StartMonth, 1, 0, 0, 0, 0, time.UTC)
}

// YearStartFor returns the start of the fiscal year containing t.
func YearStartFor(t time.Time) time.Time {
	year := t.Year()
	if t.Month() < StartMonth {
		year--
	}
	return YearStart(year)
}

// MonthsSince returns the number of whole average-length months elapsed
// between start and asOf.
func MonthsSince(start, asOf time.Time) int {
	return int(math.Floor(asOf.Sub(start).Hours() / avgMonthHours))
}

// MonthKey returns the "YYYY-MM" bucket for t.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// Key builds a "YYYY-MM" bucket from its parts.
func Key(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ParseMonthKey returns the first instant of the month named by a "YYYY-MM" key.
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}

// MonthBounds returns the inclusive [first instant, last second] range of
// the month containing t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// EnumerateMonths returns the ordered "YYYY-MM" keys from (fromYear,
// fromMonth) through (toYear, toMonth) inclusive. The result is empty when
// the range is inverted.
func EnumerateMonths(fromYear int, fromMonth time.Month, toYear int, toMonth time.Month) []string {
	var keys []string
	for y := fromYear; y <= toYear; y++ {
		start := time.January
		if y == fromYear {
			start = fromMonth
		}
		end := time.December
		if y == toYear {
			end = toMonth
		}
		for m := start; m <= end; m++ {
			keys = append(keys, Key(y, m))
		}
	}
	return keys
}
