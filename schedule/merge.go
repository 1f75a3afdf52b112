package schedule

// =============================================================================
// K-WAY MERGE - Interleave sources into one time-ordered stream
// =============================================================================

// Merge combines sources into a single source producing entries in
// globally non-decreasing date order, assuming each input is
// individually non-decreasing. Ties go to the earliest-registered
// source: a stable priority, which is what makes equal-date execution
// order deterministic.
//
// The merge is lazy: it holds exactly one pending entry per active
// source and pulls a replacement only after emitting, so infinite
// sources are fine.
func Merge(sources ...Source) Source {
	pending := make([]*Entry, len(sources))
	primed := false

	prime := func() {
		for i, src := range sources {
			if e, ok := src.Next(); ok {
				entry := e
				pending[i] = &entry
			}
		}
		primed = true
	}

	return FuncSource(func() (Entry, bool) {
		if !primed {
			prime()
		}
		min := -1
		for i, e := range pending {
			if e == nil {
				continue
			}
			if min == -1 || e.Date.Before(pending[min].Date) {
				min = i
			}
		}
		if min == -1 {
			return Entry{}, false
		}
		out := *pending[min]
		if e, ok := sources[min].Next(); ok {
			entry := e
			pending[min] = &entry
		} else {
			pending[min] = nil
		}
		return out, true
	})
}
