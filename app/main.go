package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/manantialdevida/web/app/api"
	"github.com/manantialdevida/web/app/calendar"
	"github.com/manantialdevida/web/app/cfg"
	"github.com/manantialdevida/web/app/i18n"
	"github.com/manantialdevida/web/app/ical"
	"github.com/manantialdevida/web/app/upstream"
	"github.com/manantialdevida/web/app/web"
	"github.com/manantialdevida/web/app/youtube"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	slog.Info("Starting server", "version", appCfg.Version)

	bundle, err := i18n.Load(appCfg.LocalesDir, appCfg.Locale)
	if err != nil {
		slog.Error("Failed to load locales", "dir", appCfg.LocalesDir, "error", err)
		os.Exit(1)
	}
	locale := bundle.Get(appCfg.Locale)
	slog.Info("Loaded locales", "codes", bundle.Codes(), "default", appCfg.Locale)

	ctx := context.Background()

	// Credentials are optional: a missing pair disables the endpoint
	// instead of stopping startup, so the static pages stay available.
	var events api.EventLister
	calendarClient, err := calendar.NewClient(ctx, appCfg.GoogleAPIKey, appCfg.GoogleCalendarID)
	if err != nil {
		var cerr *upstream.ConfigError
		if errors.As(err, &cerr) {
			slog.Warn("Calendar endpoint disabled",
				"has_api_key", cerr.HasAPIKey, "has_target_id", cerr.HasTargetID)
		} else {
			slog.Error("Failed to initialize calendar client", "error", err)
			os.Exit(1)
		}
	} else {
		events = calendarClient
	}

	var videos api.VideoSource
	videosFallback := false
	switch {
	case appCfg.YouTubeAPIKey != "" && appCfg.YouTubeChannelID != "":
		youtubeClient, err := youtube.NewClient(ctx, appCfg.YouTubeAPIKey, appCfg.YouTubeChannelID, locale.Events.Untitled)
		if err != nil {
			slog.Error("Failed to initialize YouTube client", "error", err)
			os.Exit(1)
		}
		videos = youtubeClient
	case appCfg.YouTubeChannelID != "":
		// No API key: serve recent uploads from the public Atom feed.
		// Live status is unavailable in this mode.
		videos = youtube.NewFeedFallback(appCfg.YouTubeChannelID, appCfg.UserAgent)
		videosFallback = true
		slog.Warn("YouTube API key not set, using Atom feed fallback", "channel_id", appCfg.YouTubeChannelID)
	default:
		slog.Warn("YouTube endpoint disabled", "has_api_key", appCfg.YouTubeAPIKey != "", "has_channel_id", false)
	}

	pipeline := calendar.NewPipeline(appCfg.Locale, locale.Events.Untitled, appCfg.WeekStartDay())
	generator := ical.NewGenerator(locale.Site.Name)
	pages := web.NewPages(bundle, appCfg.Locale)

	handler := api.NewHandler(appCfg, events, videos, pipeline, generator, videosFallback)
	server := api.NewServer(handler, pages)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		slog.Info("Endpoints available",
			"events", fmt.Sprintf("http://localhost:%s/api/calendar-events", appCfg.Port),
			"feed", fmt.Sprintf("http://localhost:%s/api/calendar-events.ics", appCfg.Port),
			"videos", fmt.Sprintf("http://localhost:%s/api/youtube-data", appCfg.Port),
			"health", fmt.Sprintf("http://localhost:%s/health", appCfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}
