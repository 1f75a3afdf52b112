/*
timeline.go - Append-only ledger of monetary events

PURPOSE:
  The Timeline is the single record of everything that happened in a
  simulation run. Accounts append events atomically with their balance
  mutations; reporting and the tax engine only ever read it.

CRITICAL INVARIANTS:
  1. APPEND-ONLY: No event is ever mutated or removed.
  2. INSERTION ORDER: Events are kept in the order appended, which is
     not necessarily date order - scenario logic may interleave.
  3. TAGGED: Each event carries a tax-effect tag so the tax engine can
     filter without parsing descriptions.

SEE ALSO:
  - tax.go: consumes tax-tagged events
  - report/: renders and aggregates events
*/
package finance

import "fmt"

// =============================================================================
// TAX EFFECT - Classification of an event for tax computation
// =============================================================================

type TaxEffect string

const (
	TaxCashIncome   TaxEffect = "CASH_INCOME"
	TaxCashWithheld TaxEffect = "CASH_WITHHELD"
	TaxDeductible   TaxEffect = "DEDUCTIBLE"
	TaxNone         TaxEffect = "NONE"
)

// =============================================================================
// EVENT - Immutable ledger entry
// =============================================================================

// Event is one dated monetary fact. Amount is signed: deposits and
// income are positive, withdrawals and withheld cash negative. Account
// is nil for events not tied to an account (income, withholding).
type Event struct {
	Date        Date
	Account     Account
	Amount      Money
	Description string
	TaxEffect   TaxEffect
}

// String renders the canonical form:
// "<date>: <account-or-N/A> <amount right-aligned to 16 cols> (<description>)"
func (e Event) String() string {
	name := "N/A"
	if e.Account != nil {
		name = e.Account.Name()
	}
	return fmt.Sprintf("%s: %s %16s (%s)", e.Date, name, e.Amount, e.Description)
}

// =============================================================================
// TIMELINE - Append-only event log
// =============================================================================

type Timeline struct {
	events []Event
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

// Append records an event. The only write operation.
func (t *Timeline) Append(e Event) {
	t.events = append(t.events, e)
}

// Events returns the events in insertion order. The returned slice is
// a copy; the log itself cannot be modified through it.
func (t *Timeline) Events() []Event {
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Len returns the number of events appended so far.
func (t *Timeline) Len() int { return len(t.events) }

// EventsIn returns the events whose date falls inside p, in insertion
// order.
func (t *Timeline) EventsIn(p Period) []Event {
	var out []Event
	for _, e := range t.events {
		if p.ContainsDate(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// EventsForYear returns the events of one calendar year.
func (t *Timeline) EventsForYear(year int) []Event {
	return t.EventsIn(CalendarYear(year))
}

// =============================================================================
// TAGGED CONSTRUCTORS
// =============================================================================

// AddIncome records taxable cash income (no account).
func (t *Timeline) AddIncome(date Date, amount Money, description string) {
	t.Append(Event{Date: date, Amount: amount, Description: description, TaxEffect: TaxCashIncome})
}

// AddWithheldCash records cash withheld at the source. The amount is
// stored negated: withholding removes cash from the flow.
func (t *Timeline) AddWithheldCash(date Date, amount Money, description string) {
	t.Append(Event{Date: date, Amount: amount.Neg(), Description: description, TaxEffect: TaxCashWithheld})
}

// AddTaxDeduction records a deductible amount against an account.
func (t *Timeline) AddTaxDeduction(date Date, account Account, amount Money, description string) {
	t.Append(Event{Date: date, Account: account, Amount: amount, Description: description, TaxEffect: TaxDeductible})
}

// AddGenericDeposit records an untagged deposit.
func (t *Timeline) AddGenericDeposit(date Date, account Account, amount Money, description string) {
	t.Append(Event{Date: date, Account: account, Amount: amount, Description: description, TaxEffect: TaxNone})
}

// AddPrincipalDeposit records the principal portion of a loan payment.
func (t *Timeline) AddPrincipalDeposit(date Date, account Account, amount Money, description string) {
	t.Append(Event{Date: date, Account: account, Amount: amount, Description: description, TaxEffect: TaxNone})
}

// AddInterestDeposit records the interest portion of a payment.
// Interest paid is tax-deductible in this model.
func (t *Timeline) AddInterestDeposit(date Date, account Account, amount Money, description string) {
	t.Append(Event{Date: date, Account: account, Amount: amount, Description: description, TaxEffect: TaxDeductible})
}

// AddWithdrawal records a withdrawal with an optional tax effect. The
// amount is stored negated.
func (t *Timeline) AddWithdrawal(date Date, account Account, amount Money, description string, effect TaxEffect) {
	t.Append(Event{Date: date, Account: account, Amount: amount.Neg(), Description: description, TaxEffect: effect})
}
