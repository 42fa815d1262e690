package api

import (
	"context"
	"time"

	gcal "google.golang.org/api/calendar/v3"

	"github.com/manantialdevida/web/app/calendar"
	"github.com/manantialdevida/web/app/cfg"
	"github.com/manantialdevida/web/app/ical"
	"github.com/manantialdevida/web/app/youtube"
)

// EventLister is the outbound calendar dependency; nil when calendar
// credentials are not configured.
type EventLister interface {
	List(ctx context.Context, opts calendar.ListOptions) ([]*gcal.Event, error)
}

// VideoSource is the outbound YouTube dependency (API client or Atom
// feed fallback); nil when no channel is configured.
type VideoSource interface {
	LiveStream(ctx context.Context) (*youtube.Video, error)
	RecentVideos(ctx context.Context, maxResults int64) ([]youtube.Video, error)
}

type Handler struct {
	cfg       *cfg.Cfg
	events    EventLister
	videos    VideoSource
	pipeline  *calendar.Pipeline
	generator *ical.Generator

	// true when videos come from the Atom feed fallback instead of the API
	videosFallback bool

	now func() time.Time
}

type EventsResponse struct {
	RecurringEvents []calendar.Event `json:"recurringEvents"`
	UpcomingEvents  []calendar.Event `json:"upcomingEvents"`
}

type VideosResponse struct {
	LiveStream   *youtube.Video  `json:"liveStream"`
	RecentVideos []youtube.Video `json:"recentVideos"`
}
