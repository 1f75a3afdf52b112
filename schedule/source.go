/*
Package schedule drives a simulation: it merges independently-produced,
possibly infinite sequences of dated actions into one globally
time-ordered stream and executes them against shared accounts and the
timeline.

PURPOSE:
  Scenarios register one Source per recurring concern (salary,
  expenses, loan payments, tax settlement). The scheduler pulls the
  globally earliest pending entry, runs its action, and pulls that
  source's next entry, until the horizon is reached.

DETERMINISM:
  Everything is single-threaded and pull-based. Entries with equal
  dates execute in the order their sources were registered, so a run
  is fully reproducible from its source registrations.

SEE ALSO:
  - merge.go: the k-way merge
  - scheduler.go: the driver loop and failure policy
*/
package schedule

import (
	"time"

	"github.com/warp/cashflow-engine/finance"
)

// =============================================================================
// SOURCE - Lazy sequence of dated actions
// =============================================================================

// Action is invoked with the entry's date and synchronously performs
// zero or more account operations and timeline appends.
type Action func(date finance.Date) error

// Entry pairs a date with the action to run on it.
type Entry struct {
	Date   finance.Date
	Action Action
}

// Source lazily produces entries in non-decreasing date order. A
// source is consumed exactly once per run and is not restartable;
// sources are logically infinite, with termination driven by the
// scheduler's horizon.
type Source interface {
	// Next returns the next entry, or ok=false when exhausted.
	Next() (entry Entry, ok bool)
}

// FuncSource adapts a generator function to a Source.
type FuncSource func() (Entry, bool)

func (f FuncSource) Next() (Entry, bool) { return f() }

// =============================================================================
// SOURCE CONSTRUCTORS
// =============================================================================

type sliceSource struct {
	entries []Entry
}

func (s *sliceSource) Next() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	e := s.entries[0]
	s.entries = s.entries[1:]
	return e, true
}

// FromSlice is a finite source over pre-built entries. Entries must
// already be in non-decreasing date order.
func FromSlice(entries []Entry) Source {
	return &sliceSource{entries: entries}
}

// Once runs a single action on a single date.
func Once(date finance.Date, action Action) Source {
	return FromSlice([]Entry{{Date: date, Action: action}})
}

// Recurring is an infinite source that fires action on start and on
// every date produced by repeatedly applying step.
func Recurring(start finance.Date, step func(finance.Date) finance.Date, action Action) Source {
	now := start
	return FuncSource(func() (Entry, bool) {
		e := Entry{Date: now, Action: action}
		now = step(now)
		return e, true
	})
}

// Monthly fires on start and the same day of every following month.
func Monthly(start finance.Date, action Action) Source {
	return Recurring(start, finance.Date.AddMonth, action)
}

// EveryDays fires on start and every n days after.
func EveryDays(start finance.Date, n int, action Action) Source {
	return Recurring(start, func(d finance.Date) finance.Date { return d.AddDays(n) }, action)
}

// Yearly fires once a year on the given month and day, starting with
// the first occurrence at or after start.
func Yearly(start finance.Date, month time.Month, day int, action Action) Source {
	year := start.Year()
	if finance.NewDate(year, month, day).Before(start) {
		year++
	}
	return FuncSource(func() (Entry, bool) {
		e := Entry{Date: finance.NewDate(year, month, day), Action: action}
		year++
		return e, true
	})
}

// Within restricts a source to entries whose date falls inside p.
// Entries before the period are skipped; the source ends at the first
// entry past it.
func Within(p finance.Period, src Source) Source {
	done := false
	return FuncSource(func() (Entry, bool) {
		for !done {
			e, ok := src.Next()
			if !ok {
				break
			}
			if e.Date.Before(p.Start) {
				continue
			}
			if !e.Date.Before(p.End) {
				break
			}
			return e, true
		}
		done = true
		return Entry{}, false
	})
}
