package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/cashflow-engine/finance"
)

func newTestLoan() *finance.AmortizedMonthlyLoan {
	// 1200.00 at 12%/year (1%/month) over 12 months: round numbers so
	// interest amounts land exactly on the cent grid.
	term := finance.Period{
		Start: finance.NewDate(2017, time.January, 1),
		End:   finance.NewDate(2018, time.January, 1),
	}
	return finance.NewAmortizedMonthlyLoan("Loan",
		finance.MustParseMoney("1200.00"),
		finance.FixedMonthlyRate{Yearly: decimal.RequireFromString("0.12")},
		term)
}

// =============================================================================
// ANNUITY PAYMENT TESTS
// =============================================================================

func TestLoan_MinimumDeposit_LevelAnnuityPayment(t *testing.T) {
	// GIVEN: A fresh 1200.00 loan at 1%/month over 12 months
	// WHEN: Asking for the first minimum payment
	// THEN: It is the standard annuity amount

	loan := newTestLoan()

	min, err := loan.MinimumDeposit(finance.NewDate(2017, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, "106.62", min.String())
}

func TestLoan_MinimumDeposit_OffScheduleDates(t *testing.T) {
	loan := newTestLoan()

	_, err := loan.MinimumDeposit(finance.NewDate(2017, time.January, 2))
	assert.ErrorIs(t, err, finance.ErrOutOfSchedule)

	_, err = loan.MinimumDeposit(finance.NewDate(2017, time.February, 1))
	assert.ErrorIs(t, err, finance.ErrOutOfSchedule)

	// Past maturity
	_, err = loan.MinimumDeposit(finance.NewDate(2018, time.June, 1))
	assert.ErrorIs(t, err, finance.ErrOutOfSchedule)
}

func TestLoan_MinimumDeposit_MaturityIsFullPayoff(t *testing.T) {
	// GIVEN: A one-month loan, so origination day is also maturity
	// WHEN: Asking for the payment due
	// THEN: It is the balance plus one month's interest

	term := finance.Period{
		Start: finance.NewDate(2017, time.January, 1),
		End:   finance.NewDate(2017, time.February, 1),
	}
	loan := finance.NewAmortizedMonthlyLoan("Loan",
		finance.MustParseMoney("1200.00"),
		finance.FixedMonthlyRate{Yearly: decimal.RequireFromString("0.12")},
		term)

	min, err := loan.MinimumDeposit(finance.NewDate(2017, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, "1212.00", min.String())
}

// =============================================================================
// PAYMENT SPLIT TESTS
// =============================================================================

func TestLoan_Deposit_SplitsInterestAndPrincipal(t *testing.T) {
	// GIVEN: A fresh loan
	// WHEN: Making the first minimum payment
	// THEN: The payment splits into a deductible interest event and a
	//       principal event, and the balance drops by the principal

	loan := newTestLoan()
	tl := finance.NewTimeline()
	jan1 := finance.NewDate(2017, time.January, 1)

	min, err := loan.MinimumDeposit(jan1)
	require.NoError(t, err)
	require.NoError(t, loan.Deposit(tl, jan1, min, "Payment"))

	events := tl.Events()
	require.Len(t, events, 2)

	interest, principal := events[0], events[1]
	assert.Equal(t, "12.00", interest.Amount.String())
	assert.Equal(t, finance.TaxDeductible, interest.TaxEffect)
	assert.Contains(t, interest.Description, "interest")

	assert.Equal(t, "94.62", principal.Amount.String())
	assert.Equal(t, finance.TaxNone, principal.TaxEffect)
	assert.Equal(t, "Payment (principal)", principal.Description)

	assert.Equal(t, "1105.38", loan.Balance().String())
	assert.Equal(t, "2017-02-01", loan.NextPaymentDue().String())
}

func TestLoan_Deposit_BelowInterestRejected(t *testing.T) {
	loan := newTestLoan()
	tl := finance.NewTimeline()

	err := loan.Deposit(tl, finance.NewDate(2017, time.January, 1), finance.MustParseMoney("10.00"), "Payment")
	assert.ErrorIs(t, err, finance.ErrInsufficientPayment)
	assert.Equal(t, 0, tl.Len(), "failed payment must not append events")
	assert.Equal(t, "1200.00", loan.Balance().String())
}

func TestLoan_Deposit_PrincipalOverBalanceRejected(t *testing.T) {
	loan := newTestLoan()
	tl := finance.NewTimeline()

	err := loan.Deposit(tl, finance.NewDate(2017, time.January, 1), finance.MustParseMoney("1300.00"), "Payment")
	assert.ErrorIs(t, err, finance.ErrOverPayment)
	assert.Equal(t, "1200.00", loan.Balance().String())
}

func TestLoan_Deposit_OffScheduleRejected(t *testing.T) {
	loan := newTestLoan()
	tl := finance.NewTimeline()

	err := loan.Deposit(tl, finance.NewDate(2017, time.January, 15), finance.MustParseMoney("106.62"), "Payment")
	assert.ErrorIs(t, err, finance.ErrOutOfSchedule)
}

// =============================================================================
// FULL AMORTIZATION TESTS
// =============================================================================

func TestLoan_MinimumPayments_AmortizeToExactlyZero(t *testing.T) {
	// GIVEN: A 12-month loan paid by the minimum every month
	// WHEN: The maturity payment clears
	// THEN: The balance is exactly zero and the principal events sum to
	//       the original amount

	loan := newTestLoan()
	tl := finance.NewTimeline()

	date := finance.NewDate(2017, time.January, 1)
	for i := 0; i < 12; i++ {
		min, err := loan.MinimumDeposit(date)
		require.NoError(t, err, "minimum on %s", date)
		require.NoError(t, loan.Deposit(tl, date, min, "Payment"), "payment on %s", date)
		date = date.AddMonth()
	}

	assert.True(t, loan.Balance().IsZero(), "balance after maturity: %s", loan.Balance())

	principalTotal := finance.Zero()
	principalCount := 0
	for _, e := range tl.Events() {
		if e.Description == "Payment (principal)" {
			principalTotal = principalTotal.Add(e.Amount)
			principalCount++
		}
	}
	assert.Equal(t, 12, principalCount)
	assert.Equal(t, "1200.00", principalTotal.String())

	// The schedule is exhausted: nothing more is due.
	_, err := loan.MinimumDeposit(date)
	assert.ErrorIs(t, err, finance.ErrOutOfSchedule)
}
