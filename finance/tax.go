/*
tax.go - Yearly tax computation over tagged timeline events

PURPOSE:
  Computes a year's net tax due (positive) or refund (negative) from
  the tax-tagged events of that year. Two independent marginal bracket
  tables - a federal and a state jurisdiction - contribute one matched
  marginal rate each, summed into a single flat rate.

MODEL:
  This is deliberately NOT true progressive taxation: the bracket is
  looked up on pre-deduction gross cash income, and the matched
  marginal rate applies flatly to the post-deduction base. The tables
  are static, simplified approximations and do not vary by year.

SEE ALSO:
  - timeline.go: tax-effect tags
  - scenario/: feeds the result back as a deposit or withdrawal action
*/
package finance

import "github.com/shopspring/decimal"

// =============================================================================
// BRACKET TABLES
// =============================================================================

type taxBracket struct {
	below decimal.Decimal // upper bound, exclusive
	rate  decimal.Decimal
}

func bracket(below int64, rate string) taxBracket {
	return taxBracket{below: decimal.NewFromInt(below), rate: decimal.RequireFromString(rate)}
}

var (
	federalBrackets = []taxBracket{
		bracket(9276, "0.10"),
		bracket(37651, "0.15"),
		bracket(91151, "0.25"),
		bracket(190151, "0.28"),
		bracket(413351, "0.33"),
		bracket(415051, "0.35"),
	}
	federalTopRate = decimal.RequireFromString("0.396")

	stateBrackets = []taxBracket{
		bracket(7749, "0.01"),
		bracket(18371, "0.02"),
		bracket(28995, "0.04"),
		bracket(40250, "0.06"),
		bracket(50689, "0.08"),
		bracket(259844, "0.093"),
		bracket(311812, "0.103"),
		bracket(519867, "0.113"),
		bracket(1000000, "0.123"),
	}
	stateTopRate = decimal.RequireFromString("0.133")
)

func marginalRate(brackets []taxBracket, top decimal.Decimal, amount decimal.Decimal) decimal.Decimal {
	for _, b := range brackets {
		if amount.LessThan(b.below) {
			return b.rate
		}
	}
	return top
}

// FederalTaxRate returns the federal marginal rate matched by amount.
// The tables are static approximations; year is accepted for future
// table selection.
func FederalTaxRate(year int, amount Money) decimal.Decimal {
	return marginalRate(federalBrackets, federalTopRate, amount.Decimal())
}

// StateTaxRate returns the state marginal rate matched by amount.
func StateTaxRate(year int, amount Money) decimal.Decimal {
	return marginalRate(stateBrackets, stateTopRate, amount.Decimal())
}

// =============================================================================
// TAX DUE
// =============================================================================

// TaxDue computes the net tax for a year from tax-tagged events:
// positive means owed, negative means refund. Callers pass the events
// of the relevant calendar year; untagged events are ignored.
func TaxDue(events []Event, year int) Money {
	gross := Zero()
	withheld := Zero()
	deductible := Zero()
	for _, e := range events {
		switch e.TaxEffect {
		case TaxCashIncome:
			gross = gross.Add(e.Amount)
		case TaxCashWithheld:
			// Withheld amounts are stored negated.
			withheld = withheld.Add(e.Amount.Neg())
		case TaxDeductible:
			deductible = deductible.Add(e.Amount)
		}
	}

	// Rate lookup uses pre-deduction gross income; the taxable base is
	// post-deduction.
	rate := FederalTaxRate(year, gross).Add(StateTaxRate(year, gross))
	taxable := gross.Sub(deductible)
	if taxable.IsNegative() {
		taxable = Zero()
	}
	total := taxable.MulDecimal(rate)
	return total.Sub(withheld)
}
