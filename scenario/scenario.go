package scenario

import (
	"github.com/warp/cashflow-engine/finance"
	"github.com/warp/cashflow-engine/report"
	"github.com/warp/cashflow-engine/schedule"
)

// =============================================================================
// SCENARIO - One financing policy to simulate
// =============================================================================

// Scenario plays one financing policy against a fresh timeline and
// fresh accounts. A scenario value is reusable: every Play builds new
// state.
type Scenario interface {
	Name() string
	Description() string
	Play(cfg Config) (*Result, error)
}

// Result is what a run leaves behind. When Play returns an error
// (AbortOnError policy), Result holds everything executed up to the
// failing action.
type Result struct {
	Timeline  *finance.Timeline
	Summaries []report.YearSummary
	Run       schedule.Result
	Accounts  []report.AccountView
}

// FinalSummary aggregates the whole run as of the last executed date.
func (r *Result) FinalSummary() report.YearSummary {
	if len(r.Summaries) == 0 {
		return report.YearSummary{}
	}
	return r.Summaries[len(r.Summaries)-1]
}

// Catalog lists the built-in scenarios.
func Catalog() []Scenario {
	return []Scenario{
		NewFixedRateMortgage(),
		NewHELOC(),
	}
}

// ByName finds a catalog scenario, nil if unknown.
func ByName(name string) Scenario {
	for _, s := range Catalog() {
		if s.Name() == name {
			return s
		}
	}
	return nil
}
