package calendar

import (
	"time"
)

// Deduplicator collapses the expanded instance list down to at most one
// event per recurring series while one-time events pass through
// unmerged. The provider expands every future occurrence of a recurring
// series into its own instance; the series identifier it assigns is the
// authoritative grouping key. Inference from title/day/time similarity
// is deliberately not attempted: it can merge distinct events that
// happen to share a title and split a series whose title varies.
type Deduplicator struct{}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{}
}

// Run filters out past and invalid instances against the single sampled
// now, then keeps the chronologically earliest instance of each group.
// Output preserves the first-seen order of group keys, so two runs over
// the same input and now produce identical results.
func (d *Deduplicator) Run(events []Event, now time.Time) []Event {
	order := make([]string, 0, len(events))
	best := make(map[string]Event, len(events))

	for _, ev := range events {
		// An instance without a usable start cannot be compared or
		// displayed; drop it before grouping.
		if ev.Start == "" || ev.StartAt.IsZero() {
			continue
		}
		// Recency cutoff: every comparison shares the same now so a
		// stale instance never survives due to clock drift mid-run.
		if ev.StartAt.Before(now) {
			continue
		}

		key := d.groupKey(ev)
		cur, ok := best[key]
		if !ok {
			order = append(order, key)
			best[key] = ev
			continue
		}
		if ev.StartAt.Before(cur.StartAt) {
			best[key] = ev
		}
	}

	out := make([]Event, 0, len(order))
	for _, key := range order {
		out = append(out, best[key])
	}
	return out
}

// groupKey returns the provider series identifier for expanded
// recurring instances, and the instance's own id otherwise. Provider
// ids and series ids come from disjoint id spaces, so a synthetic
// singleton key cannot collide with a genuine series.
func (d *Deduplicator) groupKey(ev Event) string {
	if ev.IsRecurring && ev.SeriesID != "" {
		return ev.SeriesID
	}
	return ev.ID
}
