// Package tm30 renders the Thai immigration TM30 "Name of Aliens in
// Residence" form and provides the stay-period arithmetic it needs.
package tm30

import "time"

// CheckoutDate returns the check-out date for a stay beginning on checkIn
// and lasting nights nights. Calendar-correct across month and year
// boundaries.
func CheckoutDate(checkIn time.Time, nights int) time.Time {
	return checkIn.AddDate(0, 0, nights)
}

// FormatISODate formats a date as YYYY-MM-DD. The form uses this fixed
// representation everywhere; there is no locale variation.
func FormatISODate(date time.Time) string {
	return date.Format(time.DateOnly)
}

// FormatPeriod renders the period-of-stay column value: the check-in and
// check-out dates as ISO dates joined by "to".
func FormatPeriod(checkIn time.Time, nights int) string {
	return FormatISODate(checkIn) + " to " + FormatISODate(CheckoutDate(checkIn, nights))
}
