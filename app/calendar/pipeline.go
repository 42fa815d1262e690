package calendar

import (
	"time"

	gcal "google.golang.org/api/calendar/v3"
)

// Pipeline is the full transformation from raw provider items to the
// response buckets. It holds no mutable state: Run is a pure function
// of (items, now), rebuilt fresh on every request with no caching.
type Pipeline struct {
	normalizer *Normalizer
	dedup      *Deduplicator
	formatter  *Formatter
	weekStart  time.Weekday
}

func NewPipeline(locale, untitled string, weekStart time.Weekday) *Pipeline {
	return &Pipeline{
		normalizer: NewNormalizer(untitled),
		dedup:      NewDeduplicator(),
		formatter:  NewFormatter(locale),
		weekStart:  weekStart,
	}
}

// Run normalizes, filters against the sampled now, deduplicates each
// recurring series down to its next occurrence, buckets, sorts, and
// formats. now must be sampled once by the caller and reused for the
// whole request.
func (p *Pipeline) Run(items []*gcal.Event, now time.Time) Buckets {
	events := p.normalizer.Run(items)
	events = p.dedup.Run(events, now)

	buckets := SplitAndSort(events, p.weekStart)
	buckets.Recurring = p.formatter.Run(buckets.Recurring)
	buckets.Upcoming = p.formatter.Run(buckets.Upcoming)

	return buckets
}
