package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/cashflow-engine/finance"
	"github.com/warp/cashflow-engine/report"
	"github.com/warp/cashflow-engine/scenario"
)

// twoYearConfig trims the default run to a fast two-year horizon.
func twoYearConfig() scenario.Config {
	cfg := scenario.DefaultConfig()
	cfg.End = cfg.Start.AddYears(2)
	return cfg
}

func accountByName(views []report.AccountView, name string) report.AccountView {
	for _, v := range views {
		if v.Name() == name {
			return v
		}
	}
	return nil
}

// =============================================================================
// CATALOG TESTS
// =============================================================================

func TestCatalog_ByName(t *testing.T) {
	assert.NotNil(t, scenario.ByName("fixed-rate-mortgage"))
	assert.NotNil(t, scenario.ByName("heloc"))
	assert.Nil(t, scenario.ByName("no-such-scenario"))

	for _, s := range scenario.Catalog() {
		assert.NotEmpty(t, s.Name())
		assert.NotEmpty(t, s.Description())
	}
}

// =============================================================================
// FIXED-RATE MORTGAGE SCENARIO TESTS
// =============================================================================

func TestFixedRateMortgage_TwoYearRun(t *testing.T) {
	// GIVEN: The default household over a two-year horizon
	// WHEN: Playing the mortgage scenario with the abort policy
	// THEN: Every action succeeds and the books balance

	res, err := scenario.NewFixedRateMortgage().Play(twoYearConfig())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Positive(t, res.Run.Executed)
	assert.Zero(t, res.Run.Skipped)

	// Years 2016 (empty) and 2017 were summarized; the Jan 2019
	// summary falls on the horizon and is not captured.
	require.Len(t, res.Summaries, 2)
	assert.Equal(t, 2016, res.Summaries[0].Year)
	assert.Equal(t, 2017, res.Summaries[1].Year)

	checking := accountByName(res.Accounts, "Checking")
	require.NotNil(t, checking)
	assert.True(t, checking.Balance().IsPositive(), "checking went negative: %s", checking.Balance())

	loan := accountByName(res.Accounts, "Mortgage")
	require.NotNil(t, loan)
	assert.True(t, loan.Balance().IsPositive())
	assert.True(t, loan.Balance().LessThan(finance.MustParseMoney("975000.00")),
		"two years of payments must reduce the balance: %s", loan.Balance())
}

func TestFixedRateMortgage_PrincipalConservation(t *testing.T) {
	// The original loan amount equals the remaining balance plus every
	// principal payment recorded on the timeline.
	res, err := scenario.NewFixedRateMortgage().Play(twoYearConfig())
	require.NoError(t, err)

	principal := finance.Zero()
	for _, e := range res.Timeline.Events() {
		if e.Account != nil && e.Account.Name() == "Mortgage" && e.Description == "Mortgage payment (principal)" {
			principal = principal.Add(e.Amount)
		}
	}
	require.False(t, principal.IsZero())

	loan := accountByName(res.Accounts, "Mortgage")
	require.NotNil(t, loan)
	assert.True(t, principal.Add(loan.Balance()).Equal(finance.MustParseMoney("975000.00")),
		"principal %s + balance %s != original amount", principal, loan.Balance())
}

func TestFixedRateMortgage_RecordsDeductibleInterest(t *testing.T) {
	res, err := scenario.NewFixedRateMortgage().Play(twoYearConfig())
	require.NoError(t, err)

	deductible := 0
	for _, e := range res.Timeline.EventsForYear(2017) {
		if e.TaxEffect == finance.TaxDeductible && e.Account != nil && e.Account.Name() == "Mortgage" {
			deductible++
		}
	}
	assert.Equal(t, 12, deductible, "one deductible interest event per monthly payment")
}

// =============================================================================
// HELOC SCENARIO TESTS
// =============================================================================

func TestHELOC_TwoYearRun(t *testing.T) {
	// GIVEN: The same household financing through a line of credit
	// WHEN: Playing two years with the abort policy
	// THEN: The purchase draw is partially repaid and no statement
	//       charge is ever carried over

	res, err := scenario.NewHELOC().Play(twoYearConfig())
	require.NoError(t, err)
	assert.Positive(t, res.Run.Executed)

	heloc := accountByName(res.Accounts, "HELOC")
	require.NotNil(t, heloc)
	assert.True(t, heloc.Balance().IsNegative(), "the purchase draw is still outstanding")
	assert.True(t, heloc.Balance().GreaterThan(finance.MustParseMoney("-975000.00")),
		"net income must have paid the draw down: %s", heloc.Balance())

	require.Len(t, res.Summaries, 2)
}

func TestHELOC_PaysFinanceChargesMonthly(t *testing.T) {
	res, err := scenario.NewHELOC().Play(twoYearConfig())
	require.NoError(t, err)

	interestPaid := finance.Zero()
	for _, e := range res.Timeline.EventsForYear(2017) {
		if e.TaxEffect == finance.TaxDeductible && e.Account != nil && e.Account.Name() == "HELOC" {
			interestPaid = interestPaid.Add(e.Amount)
		}
	}
	// Roughly 4.25% on a ~950k draw; anything in this band means daily
	// accrual and statement payment are both happening.
	assert.True(t, interestPaid.GreaterThan(finance.MustParseMoney("30000.00")),
		"2017 finance charges paid: %s", interestPaid)
	assert.True(t, interestPaid.LessThan(finance.MustParseMoney("45000.00")),
		"2017 finance charges paid: %s", interestPaid)
}

// =============================================================================
// DIVERGENCE TESTS
// =============================================================================

func TestScenarios_DivergeOnFinancingCosts(t *testing.T) {
	// Both scenarios see identical income and expenses; only the
	// financing vehicle differs, so their timelines must diverge.
	cfg := twoYearConfig()

	mortgage, err := scenario.NewFixedRateMortgage().Play(cfg)
	require.NoError(t, err)
	heloc, err := scenario.NewHELOC().Play(cfg)
	require.NoError(t, err)

	assert.NotEqual(t, mortgage.Timeline.Len(), heloc.Timeline.Len())
}
