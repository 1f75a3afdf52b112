/*
heloc.go - Home-equity line of credit scenario

PURPOSE:
  The HELOC is the primary account: the purchase is a draw against the
  line, salary deposits pay the monthly finance charge before reducing
  the drawn balance, and expenses draw further. The rate is the prime
  rate (stepping yearly) divided down to the day.
*/
package scenario

import (
	"github.com/warp/cashflow-engine/finance"
	"github.com/warp/cashflow-engine/report"
	"github.com/warp/cashflow-engine/schedule"
)

type HELOC struct{}

func NewHELOC() *HELOC { return &HELOC{} }

func (s *HELOC) Name() string { return "heloc" }

func (s *HELOC) Description() string {
	return "Home purchase drawn against a prime-indexed line of credit"
}

func (s *HELOC) Play(cfg Config) (*Result, error) {
	tl := finance.NewTimeline()
	income := finance.NewIncome("Salary")

	drawTerm := finance.Period{
		Start: cfg.Start,
		End:   cfg.Start.AddYears(cfg.DrawTermYears),
	}
	repaymentTerm := finance.Period{
		Start: drawTerm.End,
		End:   drawTerm.End.AddYears(cfg.RepaymentTermYears),
	}
	heloc := finance.NewLineOfCreditAccount(
		"HELOC",
		finance.PrimeIndexedRate{Prime: finance.SteppingPrimeRate{
			Start:          cfg.PrimeStartRate,
			StartYear:      cfg.Start.Year(),
			YearlyIncrease: cfg.PrimeYearlyStep,
		}},
		drawTerm,
		repaymentTerm,
	)

	accounts := func() []report.AccountView {
		return []report.AccountView{heloc}
	}

	purchase := schedule.Once(cfg.HomePurchaseDate, func(date finance.Date) error {
		return heloc.Withdraw(tl, date, cfg.LoanAmount, "Purchase")
	})

	res := &Result{Timeline: tl}
	sched := schedule.Scheduler{Horizon: cfg.End, Policy: cfg.Policy, Logger: cfg.Logger}
	run, err := sched.Run(
		summarySource(tl, cfg, &res.Summaries, accounts),
		purchase,
		taxSettlementSource(tl, cfg, heloc),
		salarySource(tl, cfg, income, heloc),
		expenseSource(tl, cfg, heloc),
		propertySource(tl, cfg, heloc),
	)
	res.Run = run
	res.Accounts = accounts()
	return res, err
}
