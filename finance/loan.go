/*
loan.go - Amortizing monthly loan

PURPOSE:
  A level-payment loan (e.g. a fixed-rate mortgage). Each monthly
  payment splits into interest on the outstanding balance and a
  principal reduction; the minimum payment is the standard annuity
  amount recomputed from the current balance, so a fully minimum-paid
  loan reaches exactly zero at maturity.

SCHEDULE:
  The loan is a strict state machine over its next-payment-due date.
  Every deposit must land exactly on that date; partial periods and
  prepayment schedules are not modeled.

SEE ALSO:
  - rate.go: period interest rates
  - credit.go: the revolving alternative
*/
package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// AMORTIZED MONTHLY LOAN
// =============================================================================

type AmortizedMonthlyLoan struct {
	name           string
	balance        Money
	rate           InterestRate
	term           Period
	nextPaymentDue Date
	maturity       Date
}

// NewAmortizedMonthlyLoan originates a loan of amount over term. The
// first payment is due on the term start; the final payment (maturity)
// falls one month before the term end.
func NewAmortizedMonthlyLoan(name string, amount Money, rate InterestRate, term Period) *AmortizedMonthlyLoan {
	return &AmortizedMonthlyLoan{
		name:           name,
		balance:        amount,
		rate:           rate,
		term:           term,
		nextPaymentDue: term.Start,
		maturity:       term.End.SubMonth(),
	}
}

func (l *AmortizedMonthlyLoan) Name() string         { return l.name }
func (l *AmortizedMonthlyLoan) Balance() Money       { return l.balance }
func (l *AmortizedMonthlyLoan) Term() Period         { return l.term }
func (l *AmortizedMonthlyLoan) Maturity() Date       { return l.maturity }
func (l *AmortizedMonthlyLoan) NextPaymentDue() Date { return l.nextPaymentDue }

// MinimumDeposit returns the payment due on date. On the maturity date
// this is the full payoff (balance plus one period's interest);
// otherwise it is the level annuity payment
//
//	balance × r × (1+r)^n / ((1+r)^n − 1)
//
// over the n whole months remaining until the term end.
func (l *AmortizedMonthlyLoan) MinimumDeposit(date Date) (Money, error) {
	if date.After(l.maturity) || !date.Equal(l.nextPaymentDue) {
		return Money{}, &OutOfScheduleError{Account: l.name, Date: date, Expected: l.nextPaymentDue}
	}
	period := MonthStarting(date)
	rate, err := l.rate.PeriodRate(period)
	if err != nil {
		return Money{}, err
	}
	if date.Equal(l.maturity) {
		interest := l.balance.MulDecimal(rate)
		return l.balance.Add(interest), nil
	}
	n := MonthsBetween(l.term.End, date)
	compound := decimalOne.Add(rate).Pow(decimal.NewFromInt(int64(n)))
	payment := l.balance.Decimal().Mul(rate.Mul(compound)).Div(compound.Sub(decimalOne))
	return NewMoney(payment), nil
}

// Deposit applies a payment on the expected due date, splitting it
// into an interest event (deductible) and a principal event, then
// advances the schedule one month.
func (l *AmortizedMonthlyLoan) Deposit(tl *Timeline, date Date, amount Money, description string) error {
	if err := checkAmount(l.name+": deposit", amount); err != nil {
		return err
	}
	if !date.Equal(l.nextPaymentDue) {
		return &OutOfScheduleError{Account: l.name, Date: date, Expected: l.nextPaymentDue}
	}
	period := MonthStarting(date)
	rate, err := l.rate.PeriodRate(period)
	if err != nil {
		return err
	}
	interest := l.balance.MulDecimal(rate)
	if amount.LessThan(interest) {
		return fmt.Errorf("%s: payment %s below interest %s due on %s: %w",
			l.name, amount, interest, date, ErrInsufficientPayment)
	}
	principal := amount.Sub(interest)
	if principal.GreaterThan(l.balance) {
		return fmt.Errorf("%s: principal %s exceeds balance %s: %w",
			l.name, principal, l.balance, ErrOverPayment)
	}
	yearlyPct, _ := rate.Mul(decimal.NewFromInt(1200)).Float64()
	tl.AddInterestDeposit(date, l, interest, fmt.Sprintf("%s (interest (%.5g%%))", description, yearlyPct))
	tl.AddPrincipalDeposit(date, l, principal, description+" (principal)")
	l.balance = l.balance.Sub(principal)
	l.nextPaymentDue = period.End
	return nil
}
