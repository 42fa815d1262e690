package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gcal "google.golang.org/api/calendar/v3"

	"github.com/manantialdevida/web/app/calendar"
	"github.com/manantialdevida/web/app/cfg"
	"github.com/manantialdevida/web/app/ical"
	"github.com/manantialdevida/web/app/upstream"
	"github.com/manantialdevida/web/app/youtube"
)

type stubLister struct {
	items []*gcal.Event
	err   error
	opts  calendar.ListOptions
}

func (s *stubLister) List(_ context.Context, opts calendar.ListOptions) ([]*gcal.Event, error) {
	s.opts = opts
	return s.items, s.err
}

type stubVideos struct {
	live     *youtube.Video
	liveErr  error
	videos   []youtube.Video
	videoErr error
}

func (s *stubVideos) LiveStream(context.Context) (*youtube.Video, error) {
	return s.live, s.liveErr
}

func (s *stubVideos) RecentVideos(context.Context, int64) ([]youtube.Video, error) {
	return s.videos, s.videoErr
}

func testCfg() *cfg.Cfg {
	return &cfg.Cfg{
		GoogleAPIKey:      "key",
		GoogleCalendarID:  "cal",
		YouTubeChannelID:  "UC123",
		Locale:            "es",
		EventsCacheMaxAge: 300,
		VideosCacheMaxAge: 60,
		MaxResults:        50,
		Version:           "test",
	}
}

func newTestHandler(events EventLister, videos VideoSource, now time.Time) *Handler {
	h := NewHandler(testCfg(), events, videos,
		calendar.NewPipeline("es", "Sin título", time.Monday),
		ical.NewGenerator("Test"), false)
	h.now = func() time.Time { return now }
	return h
}

func performRequest(h *Handler, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/calendar-events", h.GetCalendarEvents)
	r.GET("/api/calendar-events.ics", h.GetCalendarFeed)
	r.GET("/api/youtube-data", h.GetYouTubeData)
	r.GET("/health", h.GetHealth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetCalendarEvents(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	lister := &stubLister{items: []*gcal.Event{
		{
			Id:               "a1",
			Summary:          "Culto",
			Start:            &gcal.EventDateTime{DateTime: "2024-06-05T10:00:00Z"},
			End:              &gcal.EventDateTime{DateTime: "2024-06-05T11:00:00Z"},
			RecurringEventId: "S",
		},
		{
			Id:               "a2",
			Summary:          "Culto",
			Start:            &gcal.EventDateTime{DateTime: "2024-06-12T10:00:00Z"},
			End:              &gcal.EventDateTime{DateTime: "2024-06-12T11:00:00Z"},
			RecurringEventId: "S",
		},
		{
			Id:    "c1",
			Start: &gcal.EventDateTime{Date: "2024-07-04"},
			End:   &gcal.EventDateTime{Date: "2024-07-05"},
		},
	}}

	w := performRequest(newTestHandler(lister, nil, now), "/api/calendar-events")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Cache-Control"); got != "public, max-age=300" {
		t.Errorf("Unexpected Cache-Control: '%s'", got)
	}

	var res EventsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}

	if len(res.RecurringEvents) != 1 {
		t.Fatalf("Expected 1 recurring event, got %d", len(res.RecurringEvents))
	}
	if res.RecurringEvents[0].ID != "a1" {
		t.Errorf("Expected series collapsed to 'a1', got '%s'", res.RecurringEvents[0].ID)
	}
	if len(res.UpcomingEvents) != 1 {
		t.Fatalf("Expected 1 upcoming event, got %d", len(res.UpcomingEvents))
	}
	if res.UpcomingEvents[0].Title != "Sin título" {
		t.Errorf("Expected placeholder title, got '%s'", res.UpcomingEvents[0].Title)
	}

	// The sampled now doubles as the default timeMin.
	if !lister.opts.TimeMin.Equal(now) {
		t.Errorf("Expected timeMin defaulted to now, got %v", lister.opts.TimeMin)
	}
	if lister.opts.MaxResults != 50 {
		t.Errorf("Expected default max results 50, got %d", lister.opts.MaxResults)
	}
}

func TestGetCalendarEvents_QueryParams(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	lister := &stubLister{}

	w := performRequest(newTestHandler(lister, nil, now),
		"/api/calendar-events?maxResults=10&timeMin=2024-06-02T00:00:00Z&timeMax=2024-07-01T00:00:00Z")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if lister.opts.MaxResults != 10 {
		t.Errorf("Expected max results 10, got %d", lister.opts.MaxResults)
	}
	if lister.opts.TimeMin.Format(time.RFC3339) != "2024-06-02T00:00:00Z" {
		t.Errorf("Unexpected timeMin: %v", lister.opts.TimeMin)
	}
	if lister.opts.TimeMax.IsZero() {
		t.Error("timeMax should be forwarded")
	}
}

func TestGetCalendarEvents_BadParams(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	paths := []string{
		"/api/calendar-events?maxResults=abc",
		"/api/calendar-events?maxResults=-1",
		"/api/calendar-events?timeMin=yesterday",
		"/api/calendar-events?timeMax=tomorrow",
	}

	for _, path := range paths {
		w := performRequest(newTestHandler(&stubLister{}, nil, now), path)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, w.Code)
		}
	}
}

func TestGetCalendarEvents_MissingCredentials(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	w := performRequest(newTestHandler(nil, nil, now), "/api/calendar-events")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", w.Code)
	}

	var res map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("Invalid error JSON: %v", err)
	}
	if res["error"] == "" {
		t.Error("Error envelope should carry an error message")
	}
}

func TestGetCalendarEvents_UpstreamErrorRelaysStatus(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	lister := &stubLister{err: &upstream.Error{StatusCode: 403, Body: "quota exceeded"}}

	w := performRequest(newTestHandler(lister, nil, now), "/api/calendar-events")

	if w.Code != 403 {
		t.Errorf("Provider status should be relayed, expected 403, got %d", w.Code)
	}
}

func TestGetCalendarEvents_TransportFailureIs502(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	lister := &stubLister{err: &upstream.Error{Err: context.DeadlineExceeded}}

	w := performRequest(newTestHandler(lister, nil, now), "/api/calendar-events")

	if w.Code != http.StatusBadGateway {
		t.Errorf("Transport failure should map to 502, got %d", w.Code)
	}
}

func TestGetCalendarEvents_EmptyBucketsAreArrays(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	w := performRequest(newTestHandler(&stubLister{}, nil, now), "/api/calendar-events")

	body := w.Body.String()
	if body == "" || w.Code != http.StatusOK {
		t.Fatalf("Expected 200 with body, got %d", w.Code)
	}

	var res map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}
	if string(res["recurringEvents"]) != "[]" {
		t.Errorf("Empty recurring bucket should serialize as [], got %s", res["recurringEvents"])
	}
	if string(res["upcomingEvents"]) != "[]" {
		t.Errorf("Empty upcoming bucket should serialize as [], got %s", res["upcomingEvents"])
	}
}

func TestGetCalendarFeed(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	lister := &stubLister{items: []*gcal.Event{
		{
			Id:      "c1",
			Summary: "Día especial",
			Start:   &gcal.EventDateTime{Date: "2024-07-04"},
			End:     &gcal.EventDateTime{Date: "2024-07-05"},
		},
	}}

	w := performRequest(newTestHandler(lister, nil, now), "/api/calendar-events.ics")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/calendar; charset=utf-8" {
		t.Errorf("Unexpected Content-Type: '%s'", ct)
	}
	if body := w.Body.String(); body == "" || body[:15] != "BEGIN:VCALENDAR" {
		t.Errorf("Expected a VCALENDAR body, got: %.40s", body)
	}
}

func TestGetYouTubeData(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := &stubVideos{
		live: &youtube.Video{VideoID: "live1", IsLive: true},
		videos: []youtube.Video{
			{VideoID: "v1", Title: "Culto Dominical", ViewCount: "123"},
		},
	}

	w := performRequest(newTestHandler(nil, videos, now), "/api/youtube-data")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Cache-Control"); got != "public, max-age=60" {
		t.Errorf("Unexpected Cache-Control: '%s'", got)
	}

	var res VideosResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}
	if res.LiveStream == nil || !res.LiveStream.IsLive {
		t.Error("Expected a live stream in the response")
	}
	if len(res.RecentVideos) != 1 {
		t.Errorf("Expected 1 recent video, got %d", len(res.RecentVideos))
	}
}

func TestGetYouTubeData_LiveFailureDegrades(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	videos := &stubVideos{
		liveErr: &upstream.Error{StatusCode: 403},
		videos:  []youtube.Video{{VideoID: "v1"}},
	}

	w := performRequest(newTestHandler(nil, videos, now), "/api/youtube-data")

	if w.Code != http.StatusOK {
		t.Fatalf("Live lookup failure must not fail the response, got %d", w.Code)
	}

	var res VideosResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}
	if res.LiveStream != nil {
		t.Error("Failed live lookup should degrade to no live stream")
	}
}

func TestGetYouTubeData_MissingCredentials(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	w := performRequest(newTestHandler(nil, nil, now), "/api/youtube-data")

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 without a video source, got %d", w.Code)
	}
}

func TestGetHealth(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	w := performRequest(newTestHandler(nil, nil, now), "/health")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var res map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("Invalid health JSON: %v", err)
	}
	if res["version"] != "test" {
		t.Errorf("Expected version 'test', got %v", res["version"])
	}
}
