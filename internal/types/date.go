package types

import (
	"fmt"
	"time"
)

// NextBillingDate calculates the end of the period that starts at the given
// time for the given billing frequency.
// For example:
// - biweekly adds 14 days
// - monthly adds one calendar month
// - quarterly adds three calendar months
// - semiannual adds six calendar months
// - yearly adds one calendar year
// Month and year additions are clamped to the last valid day of the target
// month, so a period starting Jan 31 with monthly frequency ends Feb 28 (or 29
// in a leap year) rather than spilling into March.
func NextBillingDate(start time.Time, frequency BillingFrequency) (time.Time, error) {
	switch frequency {
	case BillingFrequencyBiweekly:
		// Plain day arithmetic; day additions roll over month boundaries.
		return start.AddDate(0, 0, 14), nil
	case BillingFrequencyMonthly:
		return AddClampedDate(start, 0, 1, 0), nil
	case BillingFrequencyQuarterly:
		return AddClampedDate(start, 0, 3, 0), nil
	case BillingFrequencySemiannual:
		return AddClampedDate(start, 0, 6, 0), nil
	case BillingFrequencyYearly:
		return AddClampedDate(start, 1, 0, 0), nil
	default:
		return start, fmt.Errorf("invalid billing frequency: %s", frequency)
	}
}

// AddClampedDate adds the given years, months and days to t, clamping the day
// of month to the last valid day of the target month instead of normalizing
// the way time.AddDate does.
func AddClampedDate(t time.Time, years, months, days int) time.Time {
	y, m, d := t.Date()
	h, min, sec := t.Clock()

	newY := y + years
	newM := time.Month(int(m) + months)

	// If we move beyond December it adjusts correctly, for example adding
	// 2 months to November lands on January next year.
	for newM > 12 {
		newM -= 12
		newY++
	}
	for newM < 1 {
		newM += 12
		newY--
	}

	// Find the last valid day of the new month
	firstOfNextMonth := time.Date(newY, newM+1, 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfNextMonth.Add(-24 * time.Hour).Day()

	newD := d + days
	if newD > lastDay {
		newD = lastDay
	}

	return time.Date(newY, newM, newD, h, min, sec, t.Nanosecond(), t.Location())
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last second of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}
