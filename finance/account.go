/*
account.go - Account interfaces and shared account behavior

PURPOSE:
  Accounts are the stateful entities of a simulation. Each variant owns
  its own state struct and appends timeline events atomically with its
  balance mutation. The shared invariant across every variant is that
  an account's last-update date is monotonically non-decreasing: time
  never runs backwards for an account.

CAPABILITIES:
  Rather than one fat interface, accounts expose capability interfaces:
  a loan can take deposits but not withdrawals, a line of credit takes
  both, an income source neither. Callers ask for exactly the
  capability they need.

SEE ALSO:
  - loan.go, checking.go, credit.go, income.go: the variants
*/
package finance

// =============================================================================
// CAPABILITY INTERFACES
// =============================================================================

// Account is anything a timeline event can reference.
type Account interface {
	Name() string
}

// Depositor accepts deposits.
type Depositor interface {
	Account
	Deposit(tl *Timeline, date Date, amount Money, description string) error
}

// Withdrawer accepts withdrawals.
type Withdrawer interface {
	Account
	Withdraw(tl *Timeline, date Date, amount Money, description string) error
}

// TaggedWithdrawer supports withdrawals carrying a tax-effect tag
// (e.g. a deductible property-tax payment from a checking account).
type TaggedWithdrawer interface {
	Withdrawer
	WithdrawTagged(tl *Timeline, date Date, amount Money, description string, effect TaxEffect) error
}

// Balancer exposes a running balance for reporting.
type Balancer interface {
	Account
	Balance() Money
}

// Transfer withdraws from one account and deposits into another under
// one date and description. Not atomic across failure: a failed
// deposit after a successful withdrawal surfaces the deposit error
// with the withdrawal already applied, mirroring two separate actions.
func Transfer(tl *Timeline, date Date, from Withdrawer, to Depositor, amount Money, description string) error {
	if err := from.Withdraw(tl, date, amount, description); err != nil {
		return err
	}
	return to.Deposit(tl, date, amount, description)
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// lastUpdate enforces the monotonic last-update invariant shared by
// every account variant.
type lastUpdate struct {
	date Date
	set  bool
}

func (u *lastUpdate) check(op string, date Date) error {
	if u.set && date.Before(u.date) {
		return &PreconditionError{Op: op, Reason: "date " + date.String() + " precedes last update " + u.date.String()}
	}
	return nil
}

func (u *lastUpdate) advance(date Date) {
	u.date = date
	u.set = true
}

func checkAmount(op string, amount Money) error {
	if amount.IsNegative() {
		return &PreconditionError{Op: op, Reason: "negative amount " + amount.String()}
	}
	return nil
}
