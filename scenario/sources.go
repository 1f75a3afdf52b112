/*
sources.go - Recurring action sources shared by every scenario

PURPOSE:
  Each function here builds one lazily-produced, date-ordered source
  of actions: paychecks, bonuses, living expenses, property costs, the
  yearly April tax settlement, and year-end summary capture. The
  actions close over the shared timeline and accounts.
*/
package scenario

import (
	"errors"
	"time"

	"github.com/warp/cashflow-engine/finance"
	"github.com/warp/cashflow-engine/report"
	"github.com/warp/cashflow-engine/schedule"
)

// SpendingAccount is the primary account a scenario routes cash
// through: salary in, expenses and taxes out.
type SpendingAccount interface {
	finance.Account
	finance.Depositor
	finance.Withdrawer
	Balance() finance.Money
}

// withdrawDeductible tags the withdrawal as deductible when the
// account supports tagging; a line of credit records a plain draw.
func withdrawDeductible(tl *finance.Timeline, acct SpendingAccount, date finance.Date, amount finance.Money, description string) error {
	if tw, ok := acct.(finance.TaggedWithdrawer); ok {
		return tw.WithdrawTagged(tl, date, amount, description, finance.TaxDeductible)
	}
	return acct.Withdraw(tl, date, amount, description)
}

// =============================================================================
// INCOME
// =============================================================================

// salarySource merges biweekly base pay with half-year and quarterly
// bonuses. Net pay is gross less the withholding rate; the
// gross/withheld/net split is recorded through the income account.
func salarySource(tl *finance.Timeline, cfg Config, income *finance.Income, to finance.Depositor) schedule.Source {
	earn := func(gross finance.Money, description string) schedule.Action {
		return func(date finance.Date) error {
			net := finance.NewMoney(gross.Decimal().Mul(one.Sub(cfg.WithholdingRate)))
			return income.EarnCash(tl, to, date, gross, net, description)
		}
	}

	base := schedule.EveryDays(cfg.Start, 14, earn(cfg.BiweeklyGross, "Salary"))
	halfBonus := schedule.Merge(
		schedule.Yearly(cfg.Start, time.January, 1, earn(cfg.HalfYearBonus, "Bonus (half-year)")),
		schedule.Yearly(cfg.Start, time.July, 1, earn(cfg.HalfYearBonus, "Bonus (half-year)")),
	)
	quarterBonus := schedule.Merge(
		schedule.Yearly(cfg.Start, time.January, 1, earn(cfg.QuarterBonus, "Bonus (quarterly)")),
		schedule.Yearly(cfg.Start, time.April, 1, earn(cfg.QuarterBonus, "Bonus (quarterly)")),
		schedule.Yearly(cfg.Start, time.July, 1, earn(cfg.QuarterBonus, "Bonus (quarterly)")),
		schedule.Yearly(cfg.Start, time.October, 1, earn(cfg.QuarterBonus, "Bonus (quarterly)")),
	)
	return schedule.Merge(base, halfBonus, quarterBonus)
}

// =============================================================================
// TAX SETTLEMENT
// =============================================================================

// taxSettlementSource settles the previous year's taxes every April 1:
// a refund is deposited, an amount owed is withdrawn (deductible).
func taxSettlementSource(tl *finance.Timeline, cfg Config, acct SpendingAccount) schedule.Source {
	return schedule.Yearly(cfg.Start, time.April, 1, func(date finance.Date) error {
		taxYear := date.Year() - 1
		due := finance.TaxDue(tl.EventsForYear(taxYear), taxYear)
		switch {
		case due.IsNegative():
			return acct.Deposit(tl, date, due.Neg(), "Tax refund")
		case due.IsPositive():
			return withdrawDeductible(tl, acct, date, due, "Taxes")
		}
		return nil
	})
}

// =============================================================================
// EXPENSES
// =============================================================================

// expenseSource merges monthly living expenses (the 15th) with the
// auto payment (monthly inside its own term).
func expenseSource(tl *finance.Timeline, cfg Config, acct SpendingAccount) schedule.Source {
	misc := schedule.Monthly(
		finance.NewDate(cfg.Start.Year(), cfg.Start.Month(), 15),
		func(date finance.Date) error {
			return acct.Withdraw(tl, date, cfg.MonthlyExpenses, "Expenses")
		})
	auto := schedule.Within(cfg.AutoTerm, schedule.Monthly(
		finance.NewDate(cfg.Start.Year(), cfg.Start.Month(), cfg.AutoTerm.Start.Day()),
		func(date finance.Date) error {
			return acct.Withdraw(tl, date, cfg.AutoPayment, "Auto")
		}))
	return schedule.Merge(misc, auto)
}

// propertySource merges the twice-yearly property tax (deductible)
// with monthly home insurance.
func propertySource(tl *finance.Timeline, cfg Config, acct SpendingAccount) schedule.Source {
	halfYearTax := finance.NewMoney(cfg.HomePrice.Decimal().Mul(cfg.PropertyTaxRate).Div(two))
	taxAction := func(date finance.Date) error {
		return withdrawDeductible(tl, acct, date, halfYearTax, "Property tax")
	}
	tax := schedule.Merge(
		schedule.Yearly(cfg.Start, time.April, 10, taxAction),
		schedule.Yearly(cfg.Start, time.December, 10, taxAction),
	)
	insurance := schedule.Monthly(
		finance.NewDate(cfg.Start.Year(), cfg.Start.Month(), 1),
		func(date finance.Date) error {
			return acct.Withdraw(tl, date, cfg.HomeInsurance, "Home insurance")
		})
	return schedule.Merge(tax, insurance)
}

// =============================================================================
// YEAR SUMMARIES
// =============================================================================

// summarySource captures the previous year's per-account summary every
// January 1, before that day's other actions run.
func summarySource(tl *finance.Timeline, cfg Config, out *[]report.YearSummary, accounts func() []report.AccountView) schedule.Source {
	return schedule.Yearly(cfg.Start, time.January, 1, func(date finance.Date) error {
		year := date.Year() - 1
		*out = append(*out, report.Summarize(tl.Events(), year, accounts()))
		return nil
	})
}

var errNotOriginated = errors.New("loan not originated yet")
