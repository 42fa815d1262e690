package calendar

import (
	"strings"
	"time"

	gcal "google.golang.org/api/calendar/v3"
)

const dateOnlyLayout = "2006-01-02"

// Normalizer maps raw provider items onto Event records. The mapping is
// total: malformed items degrade to defaulted fields and are excluded
// later by the deduplicator rather than erroring here.
type Normalizer struct {
	untitled string
}

// NewNormalizer creates a Normalizer. untitled is the placeholder title
// for events the provider returns without a summary.
func NewNormalizer(untitled string) *Normalizer {
	return &Normalizer{untitled: untitled}
}

func (n *Normalizer) Run(items []*gcal.Event) []Event {
	events := make([]Event, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		events = append(events, n.normalize(item))
	}
	return events
}

func (n *Normalizer) normalize(item *gcal.Event) Event {
	start, hasTime := resolveTime(item.Start)
	end, _ := resolveTime(item.End)

	title := item.Summary
	if title == "" {
		title = n.untitled
	}

	ev := Event{
		ID:          item.Id,
		Title:       title,
		Description: item.Description,
		Start:       start,
		End:         end,
		Location:    item.Location,
		HTMLLink:    item.HtmlLink,
		SeriesID:    item.RecurringEventId,
		IsRecurring: item.RecurringEventId != "",
		HasTime:     hasTime,
	}

	ev.StartAt = parseInstant(start)
	ev.EndAt = parseInstant(end)

	return ev
}

// resolveTime prefers the precise date-time over the civil date. The
// second return reports whether the value carries a time component.
func resolveTime(edt *gcal.EventDateTime) (string, bool) {
	if edt == nil {
		return "", false
	}
	if edt.DateTime != "" {
		return edt.DateTime, true
	}
	return edt.Date, false
}

// parseInstant parses either form of provider timestamp. Date-only
// values resolve to UTC midnight. An unparsable value yields the zero
// time, which the deduplicator treats as invalid.
func parseInstant(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if strings.Contains(s, "T") {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}
		}
		return t
	}
	t, err := time.ParseInLocation(dateOnlyLayout, s, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}
