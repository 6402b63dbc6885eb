package fiscal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearStartFor(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		{time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), YearStart(2025)},
		{time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), YearStart(2025)},
		{time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC), YearStart(2025)},
		{time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), YearStart(2026)},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, YearStartFor(c.in), "for %s", c.in)
	}
}

func TestMonthsSinceUsesFixedAverageMonth(t *testing.T) {
	start := YearStart(2025)

	// 92 calendar days to October 1 is 3.02 average months.
	assert.Equal(t, 3, MonthsSince(start, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)))
	// 184 days to January 1 is 6.04 average months.
	assert.Equal(t, 6, MonthsSince(start, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)))
	// The average month is longer than August, so September 1 still counts 2.
	assert.Equal(t, 2, MonthsSince(start, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, MonthsSince(start, start))
}

func TestMonthKeyRoundTrip(t *testing.T) {
	key := Key(2025, time.July)
	assert.Equal(t, "2025-07", key)

	first, err := ParseMonthKey(key)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, key, MonthKey(first))

	_, err = ParseMonthKey("July 2025")
	assert.Error(t, err)
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(time.Date(2025, time.February, 14, 10, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC), end)
}

func TestEnumerateMonths(t *testing.T) {
	got := EnumerateMonths(2025, time.July, 2026, time.February)
	want := []string{
		"2025-07", "2025-08", "2025-09", "2025-10", "2025-11", "2025-12",
		"2026-01", "2026-02",
	}
	assert.Equal(t, want, got)

	assert.Equal(t, []string{"2025-07"}, EnumerateMonths(2025, time.July, 2025, time.July))
	assert.Empty(t, EnumerateMonths(2026, time.January, 2025, time.December))
}
