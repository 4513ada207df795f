package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextBillingDate(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		frequency BillingFrequency
		want      time.Time
	}{
		{
			name:      "biweekly adds 14 days",
			start:     time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
			frequency: BillingFrequencyBiweekly,
			want:      time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "biweekly rolls over month boundary",
			start:     time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			frequency: BillingFrequencyBiweekly,
			want:      time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly adds one calendar month",
			start:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			frequency: BillingFrequencyMonthly,
			want:      time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly from Jan 31 clamps to Feb 28",
			start:     time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			frequency: BillingFrequencyMonthly,
			want:      time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly from Jan 31 clamps to Feb 29 in a leap year",
			start:     time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			frequency: BillingFrequencyMonthly,
			want:      time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "quarterly adds three months",
			start:     time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC),
			frequency: BillingFrequencyQuarterly,
			want:      time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "semiannual adds six months",
			start:     time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
			frequency: BillingFrequencySemiannual,
			want:      time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "yearly adds one year",
			start:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			frequency: BillingFrequencyYearly,
			want:      time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "yearly from Feb 29 clamps to Feb 28",
			start:     time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			frequency: BillingFrequencyYearly,
			want:      time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextBillingDate(tt.start, tt.frequency)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}

	t.Run("invalid frequency returns an error", func(t *testing.T) {
		_, err := NextBillingDate(time.Now(), BillingFrequency("weekly"))
		assert.Error(t, err)
	})
}

func TestAddClampedDate(t *testing.T) {
	t.Run("preserves time of day", func(t *testing.T) {
		start := time.Date(2025, 1, 31, 9, 30, 45, 0, time.UTC)
		got := AddClampedDate(start, 0, 1, 0)
		assert.Equal(t, time.Date(2025, 2, 28, 9, 30, 45, 0, time.UTC), got)
	})

	t.Run("wraps past December", func(t *testing.T) {
		start := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
		got := AddClampedDate(start, 0, 3, 0)
		assert.Equal(t, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("no clamping when the day fits", func(t *testing.T) {
		start := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
		got := AddClampedDate(start, 0, 1, 0)
		assert.Equal(t, time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC), got)
	})
}

func TestDayBounds(t *testing.T) {
	ts := time.Date(2025, 6, 15, 13, 45, 12, 99, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), StartOfDay(ts))
	assert.Equal(t, time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC), EndOfDay(ts))
}
