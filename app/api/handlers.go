package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/manantialdevida/web/app/calendar"
	"github.com/manantialdevida/web/app/cfg"
	"github.com/manantialdevida/web/app/ical"
	"github.com/manantialdevida/web/app/upstream"
	"github.com/manantialdevida/web/app/youtube"
)

// NewHandler wires the endpoint handlers. events and videos may be nil
// when the corresponding credentials are absent; the endpoints then
// answer with a configuration error instead of the process crashing.
func NewHandler(appCfg *cfg.Cfg, events EventLister, videos VideoSource,
	pipeline *calendar.Pipeline, generator *ical.Generator, videosFallback bool) *Handler {
	return &Handler{
		cfg:            appCfg,
		events:         events,
		videos:         videos,
		pipeline:       pipeline,
		generator:      generator,
		videosFallback: videosFallback,
		now:            time.Now,
	}
}

// GetCalendarEvents serves the two event buckets. now is sampled once
// per request and shared by the default timeMin and every recency
// comparison in the pipeline, so one request sees one consistent cutoff.
func (h *Handler) GetCalendarEvents(c *gin.Context) {
	buckets, ok := h.fetchBuckets(c)
	if !ok {
		return
	}

	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", h.cfg.EventsCacheMaxAge))
	c.JSON(http.StatusOK, EventsResponse{
		RecurringEvents: buckets.Recurring,
		UpcomingEvents:  buckets.Upcoming,
	})
}

// GetCalendarFeed serves the same deduplicated set as an iCalendar feed.
func (h *Handler) GetCalendarFeed(c *gin.Context) {
	buckets, ok := h.fetchBuckets(c)
	if !ok {
		return
	}

	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", h.cfg.EventsCacheMaxAge))
	c.Header("Content-Type", "text/calendar; charset=utf-8")
	c.String(http.StatusOK, h.generator.Run(buckets))
}

func (h *Handler) fetchBuckets(c *gin.Context) (calendar.Buckets, bool) {
	if h.events == nil {
		slog.Error("Missing Google Calendar API credentials",
			"has_api_key", h.cfg.GoogleAPIKey != "",
			"has_calendar_id", h.cfg.GoogleCalendarID != "")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Google Calendar API credentials not configured"})
		return calendar.Buckets{}, false
	}

	now := h.now()

	maxResults := h.cfg.MaxResults
	if raw := c.Query("maxResults"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxResults parameter"})
			return calendar.Buckets{}, false
		}
		maxResults = parsed
	}

	timeMin := now
	if raw := c.Query("timeMin"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timeMin parameter"})
			return calendar.Buckets{}, false
		}
		timeMin = parsed
	}

	var timeMax time.Time
	if raw := c.Query("timeMax"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timeMax parameter"})
			return calendar.Buckets{}, false
		}
		timeMax = parsed
	}

	items, err := h.events.List(c.Request.Context(), calendar.ListOptions{
		TimeMin:    timeMin,
		TimeMax:    timeMax,
		MaxResults: maxResults,
	})
	if err != nil {
		status := http.StatusBadGateway
		var uerr *upstream.Error
		if errors.As(err, &uerr) {
			status = uerr.HTTPStatus()
		}
		slog.Error("Calendar fetch failed", "status", status, "error", err)
		c.JSON(status, gin.H{"error": "Failed to fetch calendar events"})
		return calendar.Buckets{}, false
	}

	return h.pipeline.Run(items, now), true
}

// GetYouTubeData serves the live-stream status and the recent uploads.
// A live lookup failure degrades to "not live" rather than failing the
// whole response; a video listing failure surfaces.
func (h *Handler) GetYouTubeData(c *gin.Context) {
	if h.videos == nil {
		slog.Error("Missing YouTube credentials",
			"has_api_key", h.cfg.YouTubeAPIKey != "",
			"has_channel_id", h.cfg.YouTubeChannelID != "")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "YouTube API credentials not configured"})
		return
	}

	ctx := c.Request.Context()

	live, err := h.videos.LiveStream(ctx)
	if err != nil {
		slog.Error("Live stream lookup failed", "error", err)
		live = nil
	}

	videos, err := h.videos.RecentVideos(ctx, 12)
	if err != nil {
		status := http.StatusBadGateway
		var uerr *upstream.Error
		if errors.As(err, &uerr) {
			status = uerr.HTTPStatus()
		}
		slog.Error("Recent videos fetch failed", "status", status, "fallback", h.videosFallback, "error", err)
		c.JSON(status, gin.H{"error": "Failed to fetch YouTube data"})
		return
	}
	if videos == nil {
		videos = []youtube.Video{}
	}

	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", h.cfg.VideosCacheMaxAge))
	c.JSON(http.StatusOK, VideosResponse{
		LiveStream:   live,
		RecentVideos: videos,
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp":           time.Now().In(time.Local).Format(time.RFC3339),
		"version":             h.cfg.Version,
		"calendar_configured": h.cfg.GoogleAPIKey != "" && h.cfg.GoogleCalendarID != "",
		"youtube_configured":  h.cfg.YouTubeChannelID != "",
	})
}
