package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const channelFeedURL = "https://www.youtube.com/feeds/videos.xml?channel_id=%s"

// FeedFallback lists recent uploads from the channel's public Atom feed.
// It is used when no YouTube API key is configured: no quota, no
// credentials, but also no view counts and no live detection.
type FeedFallback struct {
	parser    *gofeed.Parser
	channelID string
}

func NewFeedFallback(channelID, userAgent string) *FeedFallback {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	return &FeedFallback{parser: parser, channelID: channelID}
}

// LiveStream always reports no live broadcast; the Atom feed does not
// distinguish live entries.
func (f *FeedFallback) LiveStream(ctx context.Context) (*Video, error) {
	return nil, nil
}

func (f *FeedFallback) RecentVideos(ctx context.Context, maxResults int64) ([]Video, error) {
	feed, err := f.parser.ParseURLWithContext(fmt.Sprintf(channelFeedURL, f.channelID), ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel feed: %w", err)
	}
	return mapFeedItems(feed.Items, maxResults), nil
}

func mapFeedItems(items []*gofeed.Item, maxResults int64) []Video {
	videos := make([]Video, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if int64(len(videos)) >= maxResults {
			break
		}

		videoID := strings.TrimPrefix(item.GUID, "yt:video:")
		if videoID == "" {
			continue
		}

		video := Video{
			ID:          videoID,
			VideoID:     videoID,
			Title:       item.Title,
			Description: item.Description,
			Thumbnail:   thumbnailURL(videoID),
			ViewCount:   "0",
		}
		if item.PublishedParsed != nil {
			video.PublishedAt = item.PublishedParsed.Format(time.RFC3339)
		}

		videos = append(videos, video)
	}
	return videos
}
