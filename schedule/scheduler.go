/*
scheduler.go - Horizon-bounded driver loop

PURPOSE:
  Runs the merged action stream until the horizon. Errors raised by
  actions propagate here untouched; the failure policy decides whether
  one failed action aborts the whole run or only that action, a choice
  that belongs to the driver invocation, not the engine.

SEE ALSO:
  - merge.go: ordering guarantees
  - finance/errors.go: the error taxonomy actions raise
*/
package schedule

import (
	"go.uber.org/zap"

	"github.com/warp/cashflow-engine/finance"
)

// =============================================================================
// FAILURE POLICY
// =============================================================================

// FailurePolicy selects how the driver treats a failed action.
type FailurePolicy int

const (
	// AbortOnError stops the run at the first failed action and
	// returns its error.
	AbortOnError FailurePolicy = iota

	// SkipFailedAction records the failure, leaves the rest of the
	// schedule running, and reports skips in the result.
	SkipFailedAction
)

// =============================================================================
// SCHEDULER
// =============================================================================

// Scheduler executes merged sources up to (but excluding) Horizon.
// Entries dated at or after the horizon are never executed.
type Scheduler struct {
	Horizon finance.Date
	Policy  FailurePolicy
	Logger  *zap.Logger
}

// Result summarizes a run.
type Result struct {
	Executed int
	Skipped  int
	LastDate finance.Date
}

// Run pulls from the merged sources in time order and executes each
// action synchronously. With AbortOnError the first action error ends
// the run and is returned alongside the partial result.
func (s *Scheduler) Run(sources ...Source) (Result, error) {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var res Result
	merged := Merge(sources...)
	for {
		e, ok := merged.Next()
		if !ok {
			break
		}
		if !e.Date.Before(s.Horizon) {
			break
		}
		if err := e.Action(e.Date); err != nil {
			if s.Policy == SkipFailedAction {
				res.Skipped++
				logger.Warn("action failed, skipping",
					zap.Stringer("date", e.Date),
					zap.Bool("model_limit", finance.IsModelLimit(err)),
					zap.Error(err))
				continue
			}
			logger.Error("action failed, aborting run",
				zap.Stringer("date", e.Date),
				zap.Error(err))
			return res, err
		}
		res.Executed++
		res.LastDate = e.Date
	}
	return res, nil
}
