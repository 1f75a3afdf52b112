package finance

// =============================================================================
// CHECKING ACCOUNT
// =============================================================================

// CheckingAccount is a simple cash account: balance starts at zero,
// deposits add, withdrawals subtract, and the balance is never allowed
// to go negative.
type CheckingAccount struct {
	name    string
	balance Money
	updated lastUpdate
}

func NewCheckingAccount(name string) *CheckingAccount {
	return &CheckingAccount{name: name}
}

func (a *CheckingAccount) Name() string   { return a.name }
func (a *CheckingAccount) Balance() Money { return a.balance }

func (a *CheckingAccount) Deposit(tl *Timeline, date Date, amount Money, description string) error {
	if err := checkAmount(a.name+": deposit", amount); err != nil {
		return err
	}
	if err := a.updated.check(a.name+": deposit", date); err != nil {
		return err
	}
	tl.AddGenericDeposit(date, a, amount, description)
	a.balance = a.balance.Add(amount)
	a.updated.advance(date)
	return nil
}

func (a *CheckingAccount) Withdraw(tl *Timeline, date Date, amount Money, description string) error {
	return a.WithdrawTagged(tl, date, amount, description, TaxNone)
}

// WithdrawTagged withdraws with a tax-effect tag on the recorded
// event. Used for deductible payments such as property tax.
func (a *CheckingAccount) WithdrawTagged(tl *Timeline, date Date, amount Money, description string, effect TaxEffect) error {
	if err := checkAmount(a.name+": withdraw", amount); err != nil {
		return err
	}
	if err := a.updated.check(a.name+": withdraw", date); err != nil {
		return err
	}
	if amount.GreaterThan(a.balance) {
		return &OverdraftError{Account: a.name, Balance: a.balance, Requested: amount}
	}
	tl.AddWithdrawal(date, a, amount, description, effect)
	a.balance = a.balance.Sub(amount)
	a.updated.advance(date)
	return nil
}
