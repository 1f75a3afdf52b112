/*
Package finance provides the core cash-flow simulation engine.

PURPOSE:
  This package contains the account, interest-rate, timeline, and tax
  primitives that a simulation replays dated monetary actions against.
  Scenarios construct accounts, feed actions through the scheduler, and
  read the resulting timeline for reporting and tax settlement.

KEY CONCEPTS IN THIS FILE (money.go):
  - Money: A monetary value quantized to the currency unit (0.01)
  - MoneyContext: The process-wide rounding configuration, installed
    explicitly at startup rather than hidden inside the arithmetic

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point errors
  2. Quantized-by-construction: A Money can only be built through the
     context, so a stored value always equals its own quantization
  3. Single currency: No currency code is carried; the simulation
     models one implicit currency

SEE ALSO:
  - timeline.go: Events store Money amounts
  - rate.go: Interest math produces raw decimals, quantized on storage
*/
package finance

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY CONTEXT - Process-wide rounding configuration
// =============================================================================

// MoneyContext configures quantization. Scale is the number of fractional
// digits of the currency unit; DivisionPrecision is the number of
// significant digits carried through divisions (rate math, annuity
// formulas) before quantization.
type MoneyContext struct {
	Scale             int32
	DivisionPrecision int
}

// DefaultMoneyContext quantizes to cents with 20 digits of division
// precision, enough to keep multi-decade compounding free of
// representation error.
var DefaultMoneyContext = MoneyContext{Scale: 2, DivisionPrecision: 20}

var moneyCtx = DefaultMoneyContext

// SetMoneyContext installs the rounding configuration. Call once at
// startup, before any Money is constructed.
func SetMoneyContext(ctx MoneyContext) {
	moneyCtx = ctx
	decimal.DivisionPrecision = ctx.DivisionPrecision
}

func init() {
	SetMoneyContext(DefaultMoneyContext)
}

// =============================================================================
// MONEY - A quantized monetary value
// =============================================================================

// Money is a signed monetary value quantized to the currency unit.
// The zero value is 0.00.
type Money struct {
	value decimal.Decimal
}

// NewMoney quantizes an arbitrary-precision value to the currency unit
// using round-half-up (ties away from zero). Idempotent:
// NewMoney(m.Decimal()) == m for every Money m.
func NewMoney(d decimal.Decimal) Money {
	return Money{value: d.Round(moneyCtx.Scale)}
}

// NewMoneyFromFloat quantizes a float64.
func NewMoneyFromFloat(f float64) Money {
	return NewMoney(decimal.NewFromFloat(f))
}

// NewMoneyFromInt builds a whole-unit amount.
func NewMoneyFromInt(n int64) Money {
	return Money{value: decimal.NewFromInt(n)}
}

// MustParseMoney parses a decimal string such as "975000.00".
// Panics on malformed input; intended for literals.
func MustParseMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("finance: bad money literal " + s)
	}
	return NewMoney(d)
}

// Zero returns 0.00.
func Zero() Money { return Money{} }

// Decimal returns the underlying quantized value.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) Add(o Money) Money { return Money{value: m.value.Add(o.value)} }
func (m Money) Sub(o Money) Money { return Money{value: m.value.Sub(o.value)} }
func (m Money) Neg() Money        { return Money{value: m.value.Neg()} }

// MulDecimal scales by an arbitrary decimal (e.g. a tax rate) and
// re-quantizes the result.
func (m Money) MulDecimal(d decimal.Decimal) Money { return NewMoney(m.value.Mul(d)) }

func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) Equal(o Money) bool       { return m.value.Equal(o.value) }
func (m Money) LessThan(o Money) bool    { return m.value.LessThan(o.value) }
func (m Money) GreaterThan(o Money) bool { return m.value.GreaterThan(o.value) }

func (m Money) Min(o Money) Money {
	if m.LessThan(o) {
		return m
	}
	return o
}

func (m Money) Max(o Money) Money {
	if m.GreaterThan(o) {
		return m
	}
	return o
}

// String renders with the configured scale, e.g. "-1873.61".
func (m Money) String() string { return m.value.StringFixed(moneyCtx.Scale) }
