/*
mortgage.go - Fixed-rate mortgage scenario

PURPOSE:
  Cash flows through a checking account; the home purchase originates
  a 30-year fixed-rate amortizing loan, paid by a monthly transfer of
  the loan's minimum deposit from checking.
*/
package scenario

import (
	"github.com/warp/cashflow-engine/finance"
	"github.com/warp/cashflow-engine/report"
	"github.com/warp/cashflow-engine/schedule"
)

type FixedRateMortgage struct{}

func NewFixedRateMortgage() *FixedRateMortgage { return &FixedRateMortgage{} }

func (s *FixedRateMortgage) Name() string { return "fixed-rate-mortgage" }

func (s *FixedRateMortgage) Description() string {
	return "Checking account plus a fixed-rate amortizing mortgage paid monthly"
}

func (s *FixedRateMortgage) Play(cfg Config) (*Result, error) {
	tl := finance.NewTimeline()
	checking := finance.NewCheckingAccount("Checking")
	income := finance.NewIncome("Salary")
	var loan *finance.AmortizedMonthlyLoan

	accounts := func() []report.AccountView {
		views := []report.AccountView{checking}
		if loan != nil {
			views = append(views, loan)
		}
		return views
	}

	purchase := schedule.Once(cfg.HomePurchaseDate, func(date finance.Date) error {
		loan = finance.NewAmortizedMonthlyLoan(
			"Mortgage",
			cfg.LoanAmount,
			finance.FixedMonthlyRate{Yearly: cfg.MortgageYearlyRate},
			finance.Period{Start: date, End: date.AddYears(cfg.MortgageTermYears)},
		)
		return nil
	})

	opening := schedule.Once(cfg.Start, func(date finance.Date) error {
		return checking.Deposit(tl, date, cfg.OpeningDeposit, "Opening deposit")
	})

	payments := schedule.Monthly(cfg.HomePurchaseDate, func(date finance.Date) error {
		if loan == nil {
			return errNotOriginated
		}
		payment, err := loan.MinimumDeposit(date)
		if err != nil {
			return err
		}
		return finance.Transfer(tl, date, checking, loan, payment, loan.Name()+" payment")
	})

	res := &Result{Timeline: tl}
	sched := schedule.Scheduler{Horizon: cfg.End, Policy: cfg.Policy, Logger: cfg.Logger}
	run, err := sched.Run(
		summarySource(tl, cfg, &res.Summaries, accounts),
		purchase,
		taxSettlementSource(tl, cfg, checking),
		salarySource(tl, cfg, income, checking),
		expenseSource(tl, cfg, checking),
		propertySource(tl, cfg, checking),
		opening,
		payments,
	)
	res.Run = run
	res.Accounts = accounts()
	return res, err
}
