/*
rate.go - Interest-rate strategies

PURPOSE:
  An InterestRate answers one question: what rate applies to a given
  period? Strategies compose; an adjustable-rate mortgage is a fixed
  monthly rate for its fixed term delegating to a yearly-stepping rate
  afterwards, and a HELOC rate divides a sampled prime rate down to the
  day.

GRANULARITY:
  Each strategy accepts only the period shapes it is defined for: a
  daily rate wants exactly one calendar day, a monthly rate wants
  first-of-month to first-of-month. Anything else is rejected with
  ErrUnsupportedPeriod rather than silently interpolated.

SEE ALSO:
  - period.go: IsDay / IsMonth shape predicates
  - loan.go, credit.go: consumers of period rates
*/
package finance

import (
	"github.com/shopspring/decimal"
)

var decimalOne = decimal.NewFromInt(1)

// =============================================================================
// INTEREST RATE - Strategy interface
// =============================================================================

// InterestRate produces the interest rate applicable to a period.
// Implementations are stateless values; composition over shared state.
type InterestRate interface {
	// PeriodRate returns the non-negative rate for the period, or an
	// error when the strategy defines no rate for that period shape.
	PeriodRate(p Period) (decimal.Decimal, error)
}

// PeriodInterest computes the quantized interest on principal for one
// period under the given strategy.
func PeriodInterest(r InterestRate, p Period, principal Money) (Money, error) {
	rate, err := r.PeriodRate(p)
	if err != nil {
		return Money{}, err
	}
	return principal.MulDecimal(rate), nil
}

// =============================================================================
// FIXED RATES
// =============================================================================

// FixedDailyRate applies a constant yearly rate pro-rated per day.
// Valid only for one-day periods.
type FixedDailyRate struct {
	Yearly decimal.Decimal
}

func (r FixedDailyRate) PeriodRate(p Period) (decimal.Decimal, error) {
	if !p.IsDay() {
		return decimal.Zero, &UnsupportedPeriodError{Period: p, Want: "one calendar day"}
	}
	return r.Yearly.Div(decimal.NewFromInt(int64(DaysInYear(p.Start.Year())))), nil
}

// FixedMonthlyRate applies a constant yearly rate divided by twelve.
// Valid only for exact-month periods.
type FixedMonthlyRate struct {
	Yearly decimal.Decimal
}

func (r FixedMonthlyRate) PeriodRate(p Period) (decimal.Decimal, error) {
	if !p.IsMonth() {
		return decimal.Zero, &UnsupportedPeriodError{Period: p, Want: "one calendar month"}
	}
	return r.Yearly.Div(decimal.NewFromInt(12)), nil
}

// =============================================================================
// YEARLY STEPPING RATE
// =============================================================================

// YearlySteppingRate is a monthly rate whose yearly rate increases by a
// fixed step each calendar year after StartYear.
type YearlySteppingRate struct {
	Start          decimal.Decimal
	StartYear      int
	YearlyIncrease decimal.Decimal
}

func (r YearlySteppingRate) PeriodRate(p Period) (decimal.Decimal, error) {
	if !p.IsMonth() {
		return decimal.Zero, &UnsupportedPeriodError{Period: p, Want: "one calendar month"}
	}
	year := p.Start.Year()
	if year < r.StartYear {
		return decimal.Zero, ErrNoRateDefined
	}
	yearly := r.Start.Add(r.YearlyIncrease.Mul(decimal.NewFromInt(int64(year - r.StartYear))))
	return yearly.Div(decimal.NewFromInt(12)), nil
}

// =============================================================================
// PRIME-INDEXED RATE
// =============================================================================

// PrimeRate is a source of the prime rate over time. Rate samples the
// yearly prime rate at a date and reports the first date at which the
// returned rate may change.
type PrimeRate interface {
	Rate(at Date) (yearly decimal.Decimal, validUntil Date)
}

// SteppingPrimeRate models a prime rate that rises by a fixed step at
// the start of each calendar year.
type SteppingPrimeRate struct {
	Start          decimal.Decimal
	StartYear      int
	YearlyIncrease decimal.Decimal
}

func (r SteppingPrimeRate) Rate(at Date) (decimal.Decimal, Date) {
	yearly := r.Start.Add(r.YearlyIncrease.Mul(decimal.NewFromInt(int64(at.Year() - r.StartYear))))
	return yearly, NewDate(at.Year()+1, 1, 1)
}

// PrimeIndexedRate derives a daily or monthly rate from a prime-rate
// source, sampled at the period start. The sampled rate must hold for
// the whole period: if the prime rate could change strictly before the
// period ends, the rate is undefined.
type PrimeIndexedRate struct {
	Prime PrimeRate
}

func (r PrimeIndexedRate) PeriodRate(p Period) (decimal.Decimal, error) {
	yearly, validUntil := r.Prime.Rate(p.Start)
	if validUntil.Before(p.End) {
		return decimal.Zero, &UnsupportedPeriodError{Period: p, Want: "period within one prime-rate window"}
	}
	switch {
	case p.IsDay():
		return yearly.Div(decimal.NewFromInt(int64(DaysInYear(p.Start.Year())))), nil
	case p.IsMonth():
		return yearly.Div(decimal.NewFromInt(12)), nil
	default:
		return decimal.Zero, &UnsupportedPeriodError{Period: p, Want: "one calendar day or month"}
	}
}

// =============================================================================
// ADJUSTABLE RATE
// =============================================================================

// AdjustableRate is a fixed monthly rate during a fixed period,
// delegating to a variable strategy once the requested period starts at
// or after the fixed period ends. No rate is defined before the fixed
// period starts, and a period straddling the boundary has no single
// rate.
type AdjustableRate struct {
	FixedPeriod Period
	fixed       FixedMonthlyRate
	variable    InterestRate
}

func NewAdjustableRate(fixedPeriod Period, fixedYearly decimal.Decimal, variable InterestRate) AdjustableRate {
	return AdjustableRate{
		FixedPeriod: fixedPeriod,
		fixed:       FixedMonthlyRate{Yearly: fixedYearly},
		variable:    variable,
	}
}

func (r AdjustableRate) PeriodRate(p Period) (decimal.Decimal, error) {
	if p.Intersects(r.FixedPeriod) {
		if !r.FixedPeriod.ContainsPeriod(p) {
			return decimal.Zero, ErrNoRateDefined
		}
		return r.fixed.PeriodRate(p)
	}
	if p.Start.Before(r.FixedPeriod.Start) {
		return decimal.Zero, ErrNoRateDefined
	}
	return r.variable.PeriodRate(p)
}
