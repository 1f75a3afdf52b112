/*
Package scenario contains the driver-side collaborators of the engine:
concrete household scenarios (fixed-rate mortgage vs. HELOC), the
recurring income/expense/tax action sources they register, and the
plumbing that plays a scenario against a fresh timeline.

PURPOSE:
  The engine answers "what happens to my balances over N years under
  policy P"; a Scenario is one P. Scenarios construct accounts with
  their interest-rate strategies, register lazy action sources, run
  the scheduler to the horizon, and capture yearly summaries along the
  way.

SEE ALSO:
  - finance/: the accounts and timeline the actions mutate
  - schedule/: the merge scheduler driving the actions
*/
package scenario

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/warp/cashflow-engine/finance"
	"github.com/warp/cashflow-engine/schedule"
)

var (
	one = decimal.NewFromInt(1)
	two = decimal.NewFromInt(2)
)

// =============================================================================
// CONFIG - Scenario parameters
// =============================================================================

// Config parameterizes a scenario run. All monetary figures are gross
// unless noted.
type Config struct {
	Start finance.Date
	End   finance.Date // horizon, exclusive

	// Home purchase
	HomePurchaseDate finance.Date
	HomePrice        finance.Money
	LoanAmount       finance.Money

	// Financing terms
	MortgageYearlyRate decimal.Decimal
	MortgageTermYears  int
	PrimeStartRate     decimal.Decimal // prime rate in the start year
	PrimeYearlyStep    decimal.Decimal
	DrawTermYears      int
	RepaymentTermYears int

	// Income
	BiweeklyGross   finance.Money
	HalfYearBonus   finance.Money // paid January and July
	QuarterBonus    finance.Money // paid each quarter
	WithholdingRate decimal.Decimal // fraction of gross withheld at the source

	// Expenses
	MonthlyExpenses finance.Money
	AutoPayment     finance.Money
	AutoTerm        finance.Period
	PropertyTaxRate decimal.Decimal // yearly, on the home value, billed twice
	HomeInsurance   finance.Money   // monthly

	// Opening cash in the checking-account scenarios
	OpeningDeposit finance.Money

	// Driver policy
	Policy schedule.FailurePolicy
	Logger *zap.Logger
}

// DefaultConfig is a thirty-year run starting January 2017.
func DefaultConfig() Config {
	start := finance.NewDate(2017, 1, 1)
	return Config{
		Start: start,
		End:   finance.NewDate(2047, 1, 1),

		HomePurchaseDate: start,
		HomePrice:        finance.MustParseMoney("1200000.00"),
		LoanAmount:       finance.MustParseMoney("975000.00"),

		MortgageYearlyRate: decimal.RequireFromString("0.04125"),
		MortgageTermYears:  30,
		PrimeStartRate:     decimal.RequireFromString("0.0425"),
		PrimeYearlyStep:    decimal.RequireFromString("0.005"),
		DrawTermYears:      15,
		RepaymentTermYears: 15,

		BiweeklyGross:   finance.MustParseMoney("7553.31"),
		HalfYearBonus:   finance.MustParseMoney("14728.95"),
		QuarterBonus:    finance.MustParseMoney("18750.00"),
		WithholdingRate: decimal.RequireFromString("0.295"),

		MonthlyExpenses: finance.MustParseMoney("1873.61"),
		AutoPayment:     finance.MustParseMoney("2225.70"),
		AutoTerm: finance.Period{
			Start: finance.NewDate(2016, 7, 19),
			End:   finance.NewDate(2021, 7, 19),
		},
		PropertyTaxRate: decimal.RequireFromString("0.0074"),
		HomeInsurance:   finance.MustParseMoney("1000.00"),

		OpeningDeposit: finance.MustParseMoney("5000.00"),
	}
}
