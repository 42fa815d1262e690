package calendar

import (
	"sort"
	"time"
)

// SplitAndSort partitions the deduplicated set into the two response
// buckets. The recurring bucket answers "what's the weekly rhythm" and
// is ordered by day-of-week index relative to weekStart; the upcoming
// bucket answers "what's coming up next" and is ordered by start
// instant. Every event lands in exactly one bucket.
func SplitAndSort(events []Event, weekStart time.Weekday) Buckets {
	b := Buckets{
		Recurring: make([]Event, 0, len(events)),
		Upcoming:  make([]Event, 0, len(events)),
	}

	for _, ev := range events {
		if ev.IsRecurring {
			b.Recurring = append(b.Recurring, ev)
		} else {
			b.Upcoming = append(b.Upcoming, ev)
		}
	}

	sort.SliceStable(b.Recurring, func(i, j int) bool {
		return weekdayIndex(b.Recurring[i].StartAt.Weekday(), weekStart) <
			weekdayIndex(b.Recurring[j].StartAt.Weekday(), weekStart)
	})

	sort.SliceStable(b.Upcoming, func(i, j int) bool {
		return b.Upcoming[i].StartAt.Before(b.Upcoming[j].StartAt)
	})

	return b
}

// weekdayIndex is the 0-based position of d in a week beginning on
// weekStart (time.Weekday itself is Sunday-based).
func weekdayIndex(d, weekStart time.Weekday) int {
	return (int(d) - int(weekStart) + 7) % 7
}
