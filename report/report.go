/*
Package report renders timelines and yearly per-account summaries.

PURPOSE:
  The engine only appends events; everything human-readable lives
  here. A yearly summary aggregates, per account, the totals deposited
  and withdrawn plus the current balance, optionally broken down by
  event description.

SEE ALSO:
  - finance/timeline.go: the canonical single-event rendering
*/
package report

import (
	"fmt"
	"io"

	"github.com/warp/cashflow-engine/finance"
)

// =============================================================================
// YEARLY SUMMARIES
// =============================================================================

// AccountView is what a summary needs from an account.
type AccountView interface {
	Name() string
	Balance() finance.Money
}

// DescriptionTotal is the net amount of one description within an
// account's year.
type DescriptionTotal struct {
	Description string
	Total       finance.Money
}

// AccountSummary aggregates one account's year.
type AccountSummary struct {
	Name          string
	Balance       finance.Money
	Deposited     finance.Money // sum of positive amounts
	Withdrawn     finance.Money // sum of negative amounts
	ByDescription []DescriptionTotal
}

// YearSummary aggregates all accounts for one calendar year.
type YearSummary struct {
	Year     int
	Accounts []AccountSummary
}

// Summarize builds the summary of year from events, for the given
// accounts. Events are matched to accounts by name. Description
// groups appear in first-seen order, keeping output deterministic.
func Summarize(events []finance.Event, year int, accounts []AccountView) YearSummary {
	inYear := make([]finance.Event, 0, len(events))
	for _, e := range events {
		if e.Date.Year() == year {
			inYear = append(inYear, e)
		}
	}

	summary := YearSummary{Year: year}
	for _, acct := range accounts {
		as := AccountSummary{Name: acct.Name(), Balance: acct.Balance()}
		index := make(map[string]int)
		for _, e := range inYear {
			if e.Account == nil || e.Account.Name() != acct.Name() {
				continue
			}
			if e.Amount.IsPositive() {
				as.Deposited = as.Deposited.Add(e.Amount)
			} else if e.Amount.IsNegative() {
				as.Withdrawn = as.Withdrawn.Add(e.Amount)
			}
			i, seen := index[e.Description]
			if !seen {
				i = len(as.ByDescription)
				index[e.Description] = i
				as.ByDescription = append(as.ByDescription, DescriptionTotal{Description: e.Description})
			}
			as.ByDescription[i].Total = as.ByDescription[i].Total.Add(e.Amount)
		}
		summary.Accounts = append(summary.Accounts, as)
	}
	return summary
}

// =============================================================================
// WRITERS
// =============================================================================

// WriteTimeline prints every event in insertion order, one per line,
// in the canonical event format.
func WriteTimeline(w io.Writer, tl *finance.Timeline) error {
	if _, err := fmt.Fprintf(w, "Timeline:\n\n"); err != nil {
		return err
	}
	for _, e := range tl.Events() {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary prints one year's per-account aggregates.
func WriteSummary(w io.Writer, s YearSummary) error {
	if _, err := fmt.Fprintf(w, "Year %d:\n", s.Year); err != nil {
		return err
	}
	for _, a := range s.Accounts {
		if _, err := fmt.Fprintf(w, "  %s: %s balance (%s deposited, %s withdrawn)\n",
			a.Name, a.Balance, a.Deposited, a.Withdrawn); err != nil {
			return err
		}
		for _, d := range a.ByDescription {
			if _, err := fmt.Fprintf(w, "    %s: %s\n", d.Description, d.Total); err != nil {
				return err
			}
		}
	}
	return nil
}
