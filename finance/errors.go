/*
errors.go - Centralized error types for the finance engine

PURPOSE:
  All engine error conditions in one place. Every error here is raised
  synchronously from an account or interest-rate operation and is fatal
  to the action that raised it: the engine never retries, because these
  represent unmodeled business rules, not transient faults.

ERROR CATEGORIES:
  1. Precondition errors - bad inputs (negative amount, out-of-order date)
  2. Schedule errors - operation on a date the state machine does not expect
  3. Payment errors - loan payment below interest, principal over balance
  4. Model-limit errors - billing states the line-of-credit model does
     not support (unpaid carryover, repayment-term accrual)

USAGE:
  The scheduler's driver inspects these with errors.Is to decide
  whether a failed action aborts the whole run or only that action:

    if errors.Is(err, finance.ErrOverdraft) { ... }

SEE ALSO:
  - rate.go, loan.go, checking.go, credit.go: raise these errors
  - schedule/scheduler.go: failure policy at the driver loop
*/
package finance

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrPrecondition is returned for a negative amount or an
	// out-of-order date passed to an account operation.
	ErrPrecondition = errors.New("operation precondition violated")

	// ErrOutOfSchedule is returned when an operation is invoked on a
	// date other than the one the account currently expects.
	ErrOutOfSchedule = errors.New("date not on payment schedule")

	// ErrInsufficientPayment is returned when a loan payment does not
	// cover the interest due for the period.
	ErrInsufficientPayment = errors.New("payment below interest due")

	// ErrOverPayment is returned when the principal portion of a loan
	// payment exceeds the outstanding balance.
	ErrOverPayment = errors.New("principal exceeds outstanding balance")

	// ErrOverdraft is returned when a withdrawal exceeds the balance.
	ErrOverdraft = errors.New("withdrawal exceeds balance")

	// ErrDrawWindowClosed is returned for a line-of-credit draw
	// attempted outside the draw term.
	ErrDrawWindowClosed = errors.New("draw outside draw term")

	// ErrUnpaidChargeCarryover is returned when a statement cutover
	// finds a previously-due finance charge still outstanding. Payment
	// windows spanning billing cycles are not modeled.
	ErrUnpaidChargeCarryover = errors.New("unpaid finance charge at statement cutover")

	// ErrUnsupportedRepaymentAccrual is returned when interest would
	// accrue during a repayment-only term. Not modeled.
	ErrUnsupportedRepaymentAccrual = errors.New("accrual during repayment term not modeled")

	// ErrUndefinedTerm is returned when accrual reaches a day outside
	// both the draw term and the repayment term.
	ErrUndefinedTerm = errors.New("date outside draw and repayment terms")

	// ErrUnsupportedPeriod is returned when an interest-rate strategy
	// is asked for a period of the wrong granularity or alignment.
	ErrUnsupportedPeriod = errors.New("period shape unsupported by rate strategy")

	// ErrNoRateDefined is returned when the configured rate strategy
	// defines no rate for the requested period.
	ErrNoRateDefined = errors.New("no interest rate defined for period")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// PreconditionError reports which operation rejected which input.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *PreconditionError) Unwrap() error { return ErrPrecondition }

// OutOfScheduleError reports the date mismatch.
type OutOfScheduleError struct {
	Account  string
	Date     Date
	Expected Date
}

func (e *OutOfScheduleError) Error() string {
	return fmt.Sprintf("%s: %s is off schedule (expected %s)", e.Account, e.Date, e.Expected)
}

func (e *OutOfScheduleError) Unwrap() error { return ErrOutOfSchedule }

// OverdraftError reports the shortfall on a withdrawal.
type OverdraftError struct {
	Account   string
	Balance   Money
	Requested Money
}

func (e *OverdraftError) Error() string {
	return fmt.Sprintf("%s: withdrawal of %s exceeds balance %s", e.Account, e.Requested, e.Balance)
}

func (e *OverdraftError) Unwrap() error { return ErrOverdraft }

// UnsupportedPeriodError reports the period a rate strategy rejected.
type UnsupportedPeriodError struct {
	Period Period
	Want   string // e.g. "one calendar day", "one calendar month"
}

func (e *UnsupportedPeriodError) Error() string {
	return fmt.Sprintf("rate undefined for %s (want %s)", e.Period, e.Want)
}

func (e *UnsupportedPeriodError) Unwrap() error { return ErrUnsupportedPeriod }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsModelLimit reports whether the error marks a billing or schedule
// state the engine deliberately does not model, as opposed to a
// business-rule violation on otherwise supported input.
func IsModelLimit(err error) bool {
	return errors.Is(err, ErrUnpaidChargeCarryover) ||
		errors.Is(err, ErrUnsupportedRepaymentAccrual) ||
		errors.Is(err, ErrUndefinedTerm) ||
		errors.Is(err, ErrUnsupportedPeriod) ||
		errors.Is(err, ErrOutOfSchedule)
}

// IsBusinessRule reports whether the error is a modeled business-rule
// violation (the operation is understood, the numbers do not allow it).
func IsBusinessRule(err error) bool {
	return errors.Is(err, ErrOverdraft) ||
		errors.Is(err, ErrInsufficientPayment) ||
		errors.Is(err, ErrOverPayment) ||
		errors.Is(err, ErrDrawWindowClosed)
}
