package youtube

// Video is one channel upload (or the current live broadcast) as served
// to clients.
type Video struct {
	ID          string `json:"id"`
	VideoID     string `json:"videoId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	PublishedAt string `json:"publishedAt,omitempty"`
	ViewCount   string `json:"viewCount"`
	IsLive      bool   `json:"isLive"`
}
