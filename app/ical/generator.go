// Package ical renders the deduplicated event set as a subscribable
// iCalendar feed, so congregants can follow activities from their own
// calendar application instead of the events page.
package ical

import (
	ics "github.com/arran4/golang-ical"

	"github.com/manantialdevida/web/app/calendar"
)

type Generator struct {
	calendarName string
}

func NewGenerator(calendarName string) *Generator {
	return &Generator{calendarName: calendarName}
}

// Run serializes both buckets into one VCALENDAR. Each surviving event
// becomes a single VEVENT; recurring series are already collapsed to
// their next occurrence, so no RRULE is emitted.
func (g *Generator) Run(buckets calendar.Buckets) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	if g.calendarName != "" {
		cal.SetXWRCalName(g.calendarName)
	}

	for _, ev := range buckets.Recurring {
		g.addEvent(cal, ev)
	}
	for _, ev := range buckets.Upcoming {
		g.addEvent(cal, ev)
	}

	return cal.Serialize()
}

func (g *Generator) addEvent(cal *ics.Calendar, ev calendar.Event) {
	if ev.StartAt.IsZero() {
		return
	}

	vevent := cal.AddEvent(ev.ID)
	vevent.SetSummary(ev.Title)

	if ev.HasTime {
		vevent.SetStartAt(ev.StartAt)
		if !ev.EndAt.IsZero() {
			vevent.SetEndAt(ev.EndAt)
		}
	} else {
		vevent.SetAllDayStartAt(ev.StartAt)
		if !ev.EndAt.IsZero() {
			vevent.SetAllDayEndAt(ev.EndAt)
		}
	}

	if ev.Description != "" {
		vevent.SetDescription(ev.Description)
	}
	if ev.Location != "" {
		vevent.SetLocation(ev.Location)
	}
	if ev.HTMLLink != "" {
		vevent.SetURL(ev.HTMLLink)
	}
}
