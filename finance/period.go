package finance

import "fmt"

// =============================================================================
// PERIOD - Half-open date interval [Start, End)
// =============================================================================

// Period is a half-open interval of days: Start is included, End is
// not. Invariant: Start ≤ End. Periods are immutable values.
//
// Two touching periods (one ending where the next starts) do NOT
// intersect; this is what makes monthly statement periods tile a year
// without double-counting boundary days.
type Period struct {
	Start Date
	End   Date
}

// MonthStarting is the one-month period beginning at start.
func MonthStarting(start Date) Period {
	return Period{Start: start, End: start.AddMonth()}
}

// SingleDay is the one-day period covering d.
func SingleDay(d Date) Period {
	return Period{Start: d, End: d.AddDays(1)}
}

// CalendarYear covers [Jan 1, Jan 1 of the next year).
func CalendarYear(year int) Period {
	return Period{Start: NewDate(year, 1, 1), End: NewDate(year+1, 1, 1)}
}

// ContainsDate reports whether d falls inside the interval.
func (p Period) ContainsDate(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.Before(p.End)
}

// ContainsPeriod reports whether o lies entirely inside p.
func (p Period) ContainsPeriod(o Period) bool {
	return o.Start.AfterOrEqual(p.Start) && o.End.BeforeOrEqual(p.End)
}

// Intersects reports whether the intervals share at least one day.
// Reflexive and commutative for non-empty periods.
func (p Period) Intersects(o Period) bool {
	return p.Start.Before(o.End) && o.Start.Before(p.End)
}

// Days returns the integer length of the interval.
func (p Period) Days() int {
	return DaysBetween(p.Start, p.End)
}

// IsDay reports whether the period is exactly one calendar day.
func (p Period) IsDay() bool {
	return p.Days() == 1
}

// IsMonth reports whether the period is exactly one calendar month,
// first-of-month to first-of-month.
func (p Period) IsMonth() bool {
	return p.Start.Day() == 1 && p.End.Day() == 1 && p.Start.AddMonth().Equal(p.End)
}

func (p Period) String() string {
	return fmt.Sprintf("[%s, %s)", p.Start, p.End)
}
