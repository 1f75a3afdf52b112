package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/cashflow-engine/finance"
	"github.com/warp/cashflow-engine/schedule"
)

func noop(finance.Date) error { return nil }

// take pulls up to n entry dates from a source.
func take(src schedule.Source, n int) []string {
	var out []string
	for len(out) < n {
		e, ok := src.Next()
		if !ok {
			break
		}
		out = append(out, e.Date.String())
	}
	return out
}

// =============================================================================
// FINITE SOURCE TESTS
// =============================================================================

func TestFromSlice_EmitsInOrderThenExhausts(t *testing.T) {
	src := schedule.FromSlice([]schedule.Entry{
		{Date: finance.NewDate(2017, time.January, 1), Action: noop},
		{Date: finance.NewDate(2017, time.February, 1), Action: noop},
	})

	assert.Equal(t, []string{"2017-01-01", "2017-02-01"}, take(src, 10))

	_, ok := src.Next()
	assert.False(t, ok, "exhausted source must stay exhausted")
}

func TestOnce_FiresExactlyOnce(t *testing.T) {
	src := schedule.Once(finance.NewDate(2017, time.June, 15), noop)
	assert.Equal(t, []string{"2017-06-15"}, take(src, 10))
}

// =============================================================================
// RECURRING SOURCE TESTS
// =============================================================================

func TestMonthly_PreservesDayOfMonth(t *testing.T) {
	src := schedule.Monthly(finance.NewDate(2017, time.November, 15), noop)
	assert.Equal(t,
		[]string{"2017-11-15", "2017-12-15", "2018-01-15"},
		take(src, 3))
}

func TestEveryDays_StepsByFixedInterval(t *testing.T) {
	src := schedule.EveryDays(finance.NewDate(2017, time.January, 1), 14, noop)
	assert.Equal(t,
		[]string{"2017-01-01", "2017-01-15", "2017-01-29", "2017-02-12"},
		take(src, 4))
}

func TestYearly_FirstOccurrenceAtOrAfterStart(t *testing.T) {
	// Start before the anchor day: fires the same year.
	src := schedule.Yearly(finance.NewDate(2017, time.January, 1), time.April, 1, noop)
	assert.Equal(t, []string{"2017-04-01", "2018-04-01"}, take(src, 2))

	// Start past the anchor day: first fire rolls to next year.
	src = schedule.Yearly(finance.NewDate(2017, time.June, 15), time.April, 1, noop)
	assert.Equal(t, []string{"2018-04-01"}, take(src, 1))

	// Start exactly on the anchor day: fires that day.
	src = schedule.Yearly(finance.NewDate(2017, time.April, 1), time.April, 1, noop)
	assert.Equal(t, []string{"2017-04-01"}, take(src, 1))
}

// =============================================================================
// WITHIN FILTER TESTS
// =============================================================================

func TestWithin_ClipsToThePeriod(t *testing.T) {
	// GIVEN: A monthly source starting before the window
	// WHEN: Restricting it to [Mar 1, Jun 1)
	// THEN: Entries before are skipped, the first entry past ends it

	window := finance.Period{
		Start: finance.NewDate(2017, time.March, 1),
		End:   finance.NewDate(2017, time.June, 1),
	}
	src := schedule.Within(window, schedule.Monthly(finance.NewDate(2017, time.January, 15), noop))

	assert.Equal(t,
		[]string{"2017-03-15", "2017-04-15", "2017-05-15"},
		take(src, 10))

	_, ok := src.Next()
	assert.False(t, ok)
}

func TestWithin_EmptyWhenSourceStartsPastPeriod(t *testing.T) {
	window := finance.Period{
		Start: finance.NewDate(2017, time.March, 1),
		End:   finance.NewDate(2017, time.June, 1),
	}
	src := schedule.Within(window, schedule.Monthly(finance.NewDate(2017, time.July, 1), noop))

	_, ok := src.Next()
	require.False(t, ok)
}
