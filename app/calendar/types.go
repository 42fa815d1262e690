package calendar

import (
	"time"
)

// Event is one calendar entry as served to clients. Start and End keep
// the provider's raw values (RFC 3339 date-time or plain date) so a
// client can re-render the time-of-day in its own timezone; StartAt and
// EndAt are the parsed counterparts used internally.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Location    string `json:"location,omitempty"`
	HTMLLink    string `json:"htmlLink,omitempty"`
	SeriesID    string `json:"recurringEventId,omitempty"`
	IsRecurring bool   `json:"isRecurring"`

	// Display fields computed by the Formatter
	DisplayDate string `json:"displayDate,omitempty"`
	DisplayTime string `json:"displayTime,omitempty"`
	HasTime     bool   `json:"hasTime"`

	StartAt time.Time `json:"-"`
	EndAt   time.Time `json:"-"`
}

// Buckets is the pipeline output: weekly activities sorted by day of
// week, and one-time events sorted by start instant.
type Buckets struct {
	Recurring []Event
	Upcoming  []Event
}
