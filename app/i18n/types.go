package i18n

// Locale is the full translation set for one language, loaded from a
// YAML file named after its code (e.g. locales/es.yml).
type Locale struct {
	Code string // derived from the filename, not the file contents

	Site struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"site"`

	Nav struct {
		Home    string `yaml:"home"`
		About   string `yaml:"about"`
		Services string `yaml:"services"`
		Contact string `yaml:"contact"`
		Live    string `yaml:"live"`
	} `yaml:"nav"`

	Home struct {
		Welcome   string `yaml:"welcome"`
		LearnMore string `yaml:"learn_more"`
	} `yaml:"home"`

	About struct {
		Title    string `yaml:"title"`
		Subtitle string `yaml:"subtitle"`
		Mission  string `yaml:"mission"`
		Vision   string `yaml:"vision"`
	} `yaml:"about"`

	Services struct {
		Title    string `yaml:"title"`
		Subtitle string `yaml:"subtitle"`
	} `yaml:"services"`

	Contact struct {
		Title    string `yaml:"title"`
		Subtitle string `yaml:"subtitle"`
	} `yaml:"contact"`

	Live struct {
		Title        string `yaml:"title"`
		NoLive       string `yaml:"no_live"`
		RecentVideos string `yaml:"recent_videos"`
	} `yaml:"live"`

	Events struct {
		Untitled       string `yaml:"untitled"`
		RecurringTitle string `yaml:"recurring_title"`
		UpcomingTitle  string `yaml:"upcoming_title"`
		NoEvents       string `yaml:"no_events"`
	} `yaml:"events"`
}
