package cfg

type Cfg struct {
	// HTTP server
	Port string

	// Google Calendar credentials. May be absent; the events endpoint
	// then answers with a configuration error instead of crashing.
	GoogleAPIKey     string
	GoogleCalendarID string

	// YouTube credentials. A missing API key with a configured channel
	// degrades recent videos to the channel's public Atom feed.
	YouTubeAPIKey    string
	YouTubeChannelID string

	// Localization
	Locale     string
	LocalesDir string
	WeekStart  string

	// Response cache hints (seconds); caching itself happens at the edge
	EventsCacheMaxAge int
	VideosCacheMaxAge int

	// Default result cap for the events endpoint
	MaxResults int64

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
