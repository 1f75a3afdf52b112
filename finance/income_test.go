package finance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/cashflow-engine/finance"
)

// =============================================================================
// GROSS/WITHHELD/NET SPLIT TESTS
// =============================================================================

func TestIncome_EarnCash_RecordsSplit(t *testing.T) {
	// GIVEN: 1000.00 gross earned with 800.00 net
	// WHEN: Earning into a checking account
	// THEN: Three events record the full split and the net is deposited

	income := finance.NewIncome("Salary")
	acct := finance.NewCheckingAccount("Checking")
	tl := finance.NewTimeline()
	date := finance.NewDate(2017, time.January, 15)

	require.NoError(t, income.EarnCash(tl, acct, date, finance.MustParseMoney("1000.00"), finance.MustParseMoney("800.00"), "Salary"))

	events := tl.Events()
	require.Len(t, events, 3)

	gross := events[0]
	assert.Equal(t, "1000.00", gross.Amount.String())
	assert.Equal(t, finance.TaxCashIncome, gross.TaxEffect)
	assert.Nil(t, gross.Account)

	withheld := events[1]
	assert.Equal(t, "-200.00", withheld.Amount.String())
	assert.Equal(t, finance.TaxCashWithheld, withheld.TaxEffect)
	assert.Equal(t, "Salary (withheld)", withheld.Description)

	net := events[2]
	assert.Equal(t, "800.00", net.Amount.String())
	assert.Equal(t, "Salary (net)", net.Description)

	assert.Equal(t, "800.00", acct.Balance().String())
}

func TestIncome_EarnCash_NoWithholding(t *testing.T) {
	// Gross equal to net: no withheld event at all.
	income := finance.NewIncome("Salary")
	acct := finance.NewCheckingAccount("Checking")
	tl := finance.NewTimeline()

	require.NoError(t, income.EarnCash(tl, acct, finance.NewDate(2017, time.January, 15),
		finance.MustParseMoney("1000.00"), finance.MustParseMoney("1000.00"), "Salary"))

	require.Equal(t, 2, tl.Len())
	for _, e := range tl.Events() {
		assert.NotEqual(t, finance.TaxCashWithheld, e.TaxEffect)
	}
}

// =============================================================================
// PRECONDITION TESTS
// =============================================================================

func TestIncome_EarnCash_Preconditions(t *testing.T) {
	income := finance.NewIncome("Salary")
	acct := finance.NewCheckingAccount("Checking")
	tl := finance.NewTimeline()
	date := finance.NewDate(2017, time.January, 15)

	// Net above gross
	err := income.EarnCash(tl, acct, date, finance.MustParseMoney("800.00"), finance.MustParseMoney("1000.00"), "Salary")
	assert.ErrorIs(t, err, finance.ErrPrecondition)

	// Negative net
	err = income.EarnCash(tl, acct, date, finance.MustParseMoney("800.00"), finance.MustParseMoney("-1.00"), "Salary")
	assert.ErrorIs(t, err, finance.ErrPrecondition)

	assert.Equal(t, 0, tl.Len())
}

func TestIncome_EarnCash_DatesNeverRunBackwards(t *testing.T) {
	income := finance.NewIncome("Salary")
	acct := finance.NewCheckingAccount("Checking")
	tl := finance.NewTimeline()

	require.NoError(t, income.EarnCash(tl, acct, finance.NewDate(2017, time.March, 10),
		finance.MustParseMoney("1000.00"), finance.MustParseMoney("800.00"), "Salary"))

	err := income.EarnCash(tl, acct, finance.NewDate(2017, time.March, 9),
		finance.MustParseMoney("1000.00"), finance.MustParseMoney("800.00"), "Salary")
	assert.ErrorIs(t, err, finance.ErrPrecondition)
}
