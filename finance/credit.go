/*
credit.go - Revolving line of credit

PURPOSE:
  Models a credit line (credit card, HELOC) where interest accrues
  daily on the drawn amount and becomes due at the monthly statement
  cutover. A draw term, during which borrowing is allowed, precedes an
  optional repayment-only term.

BALANCE SIGN:
  The balance is signed: zero or positive means nothing is owed,
  negative is the drawn amount. Withdrawals push the balance down,
  deposits push it back up; overpaying past zero is permitted.

STATEMENT CYCLE:
  advanceTo walks day by day from the last update. On the first of
  each month the accrued finance charge becomes due; a due charge
  still outstanding at the next cutover is a model limit
  (ErrUnpaidChargeCarryover - grace windows spanning billing cycles
  are not supported).

SEE ALSO:
  - rate.go: PrimeIndexedRate is the usual strategy here
  - errors.go: the model-limit error family
*/
package finance

import "fmt"

// =============================================================================
// LINE OF CREDIT ACCOUNT
// =============================================================================

type LineOfCreditAccount struct {
	name          string
	rate          InterestRate
	drawTerm      Period
	repaymentTerm Period
	balance       Money
	periodCharge  Money // accrued this statement period, not yet due
	dueCharge     Money // due for payment
	updated       lastUpdate
}

func NewLineOfCreditAccount(name string, rate InterestRate, drawTerm, repaymentTerm Period) *LineOfCreditAccount {
	return &LineOfCreditAccount{
		name:          name,
		rate:          rate,
		drawTerm:      drawTerm,
		repaymentTerm: repaymentTerm,
	}
}

func (a *LineOfCreditAccount) Name() string { return a.name }

// Balance is signed; negative means drawn.
func (a *LineOfCreditAccount) Balance() Money { return a.balance }

// AccruedFinanceCharge is the charge accumulated in the current
// statement period, not yet due.
func (a *LineOfCreditAccount) AccruedFinanceCharge() Money { return a.periodCharge }

// DueFinanceCharge is the charge currently due for payment.
func (a *LineOfCreditAccount) DueFinanceCharge() Money { return a.dueCharge }

func (a *LineOfCreditAccount) DrawTerm() Period      { return a.drawTerm }
func (a *LineOfCreditAccount) RepaymentTerm() Period { return a.repaymentTerm }

// advanceTo accrues finance charges for every day in
// [lastUpdate, date), marking charges due at each statement cutover.
func (a *LineOfCreditAccount) advanceTo(date Date) error {
	if !a.updated.set {
		// Nothing drawn yet, nothing to accrue.
		return nil
	}
	now := a.updated.date
	for now.Before(date) {
		if now.Day() == 1 {
			if !a.dueCharge.IsZero() {
				return ErrUnpaidChargeCarryover
			}
			a.dueCharge = a.periodCharge
			a.periodCharge = Zero()
		}
		tomorrow := now.AddDays(1)
		if a.balance.IsNegative() {
			switch {
			case a.drawTerm.ContainsDate(now):
				charge, err := PeriodInterest(a.rate, SingleDay(now), a.balance.Neg())
				if err != nil {
					return err
				}
				a.periodCharge = a.periodCharge.Add(charge)
			case a.repaymentTerm.ContainsDate(now):
				return ErrUnsupportedRepaymentAccrual
			default:
				return ErrUndefinedTerm
			}
		}
		a.updated.advance(tomorrow)
		now = tomorrow
	}
	return nil
}

// Deposit advances accrual to date, pays any due finance charge first
// (capped at amount, recorded as interest), and applies the remainder
// against the balance. Overpayment past zero is permitted.
func (a *LineOfCreditAccount) Deposit(tl *Timeline, date Date, amount Money, description string) error {
	if err := checkAmount(a.name+": deposit", amount); err != nil {
		return err
	}
	if err := a.updated.check(a.name+": deposit", date); err != nil {
		return err
	}
	if err := a.advanceTo(date); err != nil {
		return err
	}
	principal := amount
	if a.dueCharge.IsPositive() {
		payment := a.dueCharge.Min(amount)
		if payment.IsPositive() {
			tl.AddInterestDeposit(date, a, payment, description+" (interest)")
			a.dueCharge = a.dueCharge.Sub(payment)
			principal = principal.Sub(payment)
		}
	}
	tl.AddGenericDeposit(date, a, principal, description)
	a.balance = a.balance.Add(principal)
	a.updated.advance(date)
	return nil
}

// Withdraw draws against the line. Only valid inside the draw term.
func (a *LineOfCreditAccount) Withdraw(tl *Timeline, date Date, amount Money, description string) error {
	if err := checkAmount(a.name+": withdraw", amount); err != nil {
		return err
	}
	if !a.drawTerm.ContainsDate(date) {
		return fmt.Errorf("%s: draw on %s outside draw term %s: %w", a.name, date, a.drawTerm, ErrDrawWindowClosed)
	}
	if err := a.updated.check(a.name+": withdraw", date); err != nil {
		return err
	}
	if err := a.advanceTo(date); err != nil {
		return err
	}
	tl.AddWithdrawal(date, a, amount, description, TaxNone)
	a.balance = a.balance.Sub(amount)
	a.updated.advance(date)
	return nil
}
