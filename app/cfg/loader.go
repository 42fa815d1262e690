package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	Port string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`

	// Google Calendar
	GoogleAPIKey     string `long:"google-api-key" env:"GOOGLE_API_KEY" description:"Google Calendar API key"`
	GoogleCalendarID string `long:"google-calendar-id" env:"GOOGLE_CALENDAR_ID" description:"Google Calendar identifier"`

	// YouTube
	YouTubeAPIKey    string `long:"youtube-api-key" env:"YOUTUBE_API_KEY" description:"YouTube Data API key"`
	YouTubeChannelID string `long:"youtube-channel-id" env:"YOUTUBE_CHANNEL_ID" description:"YouTube channel identifier"`

	// Localization
	Locale     string `long:"locale" env:"LOCALE" default:"es" description:"Locale for server-side date formatting and page strings"`
	LocalesDir string `long:"locales-dir" env:"LOCALES_DIR" default:"./locales" description:"Directory containing locale YAML files"`
	WeekStart  string `long:"week-start" env:"WEEK_START" default:"monday" choice:"monday" choice:"sunday" description:"First day of the week for the recurring activities listing"`

	// Response cache hints
	EventsCacheMaxAge int `long:"events-cache-max-age" env:"EVENTS_CACHE_MAX_AGE" default:"300" description:"Cache-Control max-age for calendar responses, in seconds"`
	VideosCacheMaxAge int `long:"videos-cache-max-age" env:"VIDEOS_CACHE_MAX_AGE" default:"60" description:"Cache-Control max-age for YouTube responses, in seconds"`

	MaxResults int64 `long:"max-results" env:"MAX_RESULTS" default:"50" description:"Default result cap for calendar instance listing"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Manantial Web/1.0" description:"User agent string for outbound HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"Europe/Madrid" description:"Timezone for server timestamps (e.g., UTC, Europe/Madrid)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:              raw.Port,
		GoogleAPIKey:      raw.GoogleAPIKey,
		GoogleCalendarID:  raw.GoogleCalendarID,
		YouTubeAPIKey:     raw.YouTubeAPIKey,
		YouTubeChannelID:  raw.YouTubeChannelID,
		Locale:            raw.Locale,
		LocalesDir:        raw.LocalesDir,
		WeekStart:         raw.WeekStart,
		EventsCacheMaxAge: raw.EventsCacheMaxAge,
		VideosCacheMaxAge: raw.VideosCacheMaxAge,
		MaxResults:        raw.MaxResults,
		UserAgent:         raw.UserAgent,
		Timezone:          raw.Timezone,
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

// WeekStartDay maps the configured week start onto time.Weekday.
func (c *Cfg) WeekStartDay() time.Weekday {
	if c.WeekStart == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
