package finance

// =============================================================================
// INCOME SOURCE
// =============================================================================

// Income is a stateless pass-through that records the gross/withheld/
// net split of earned cash and deposits the net into a target account.
// It holds no balance of its own.
type Income struct {
	name    string
	updated lastUpdate
}

func NewIncome(name string) *Income {
	return &Income{name: name}
}

func (i *Income) Name() string { return i.name }

// EarnCash records gross income, the withheld portion (gross − net,
// when positive), and deposits the net amount into to. Requires
// gross ≥ net ≥ 0.
func (i *Income) EarnCash(tl *Timeline, to Depositor, date Date, gross, net Money, description string) error {
	if net.IsNegative() {
		return &PreconditionError{Op: i.name + ": earn", Reason: "negative net amount " + net.String()}
	}
	if gross.LessThan(net) {
		return &PreconditionError{Op: i.name + ": earn", Reason: "gross " + gross.String() + " below net " + net.String()}
	}
	if err := i.updated.check(i.name+": earn", date); err != nil {
		return err
	}
	tl.AddIncome(date, gross, description)
	withheld := gross.Sub(net)
	if withheld.IsPositive() {
		tl.AddWithheldCash(date, withheld, description+" (withheld)")
	}
	if err := to.Deposit(tl, date, net, description+" (net)"); err != nil {
		return err
	}
	i.updated.advance(date)
	return nil
}
