package finance

import (
	"time"
)

// =============================================================================
// DATE - Day-granularity point in time
// =============================================================================

// Date is a calendar day. The simulation never deals in finer
// granularity, so hours and time zones are normalized away.
type Date struct {
	t time.Time
}

// NewDate builds a Date. Out-of-range month/day values are normalized
// the same way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Comparison
func (d Date) Before(o Date) bool        { return d.t.Before(o.t) }
func (d Date) After(o Date) bool         { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool         { return d.t.Equal(o.t) }
func (d Date) BeforeOrEqual(o Date) bool { return !d.t.After(o.t) }
func (d Date) AfterOrEqual(o Date) bool  { return !d.t.Before(o.t) }

// Properties
func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }
func (d Date) IsZero() bool      { return d.t.IsZero() }

// AddDays advances by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// AddMonth advances one calendar month preserving the day-of-month.
// If the day does not exist in the target month the result is
// normalized; callers are expected to stay on days 1-28 when that
// matters (payment schedules anchor on the origination day).
func (d Date) AddMonth() Date {
	return NewDate(d.Year(), d.Month()+1, d.Day())
}

// SubMonth steps back one calendar month preserving the day-of-month.
func (d Date) SubMonth() Date {
	return NewDate(d.Year(), d.Month()-1, d.Day())
}

// AddYears advances by n calendar years.
func (d Date) AddYears(n int) Date {
	return NewDate(d.Year()+n, d.Month(), d.Day())
}

func (d Date) String() string { return d.t.Format("2006-01-02") }

// =============================================================================
// CALENDAR ARITHMETIC
// =============================================================================

// DaysBetween returns the number of calendar days from from to to.
func DaysBetween(from, to Date) int {
	return int(to.t.Sub(from.t).Hours() / 24)
}

// MonthsBetween returns the count of whole months from b to a. Both
// dates must share the same day-of-month (aligned); the fractional
// remainder of unaligned dates is not defined here.
func MonthsBetween(a, b Date) int {
	return (a.Year()-b.Year())*12 + int(a.Month()) - int(b.Month())
}

// DaysInYear returns 365, or 366 for leap years.
func DaysInYear(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}
