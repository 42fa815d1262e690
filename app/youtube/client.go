package youtube

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/manantialdevida/web/app/upstream"
)

// Client reads live-stream status and recent uploads from the YouTube
// Data API for a single fixed channel.
type Client struct {
	srv       *yt.Service
	channelID string
	untitled  string
}

func NewClient(ctx context.Context, apiKey, channelID, untitled string) (*Client, error) {
	if apiKey == "" || channelID == "" {
		return nil, &upstream.ConfigError{
			Service:     "YouTube",
			HasAPIKey:   apiKey != "",
			HasTargetID: channelID != "",
		}
	}

	srv, err := yt.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &upstream.Error{Err: err}
	}

	return &Client{srv: srv, channelID: channelID, untitled: untitled}, nil
}

// LiveStream returns the channel's current live broadcast, or nil when
// the channel is not live.
func (c *Client) LiveStream(ctx context.Context) (*Video, error) {
	res, err := c.srv.Search.List([]string{"snippet"}).
		ChannelId(c.channelID).
		EventType("live").
		Type("video").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapErr(err)
	}

	if len(res.Items) == 0 {
		return nil, nil
	}

	item := res.Items[0]
	return &Video{
		ID:          item.Id.VideoId,
		VideoID:     item.Id.VideoId,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Thumbnail:   thumbnailURL(item.Id.VideoId),
		IsLive:      true,
	}, nil
}

// RecentVideos lists the channel's latest uploads with view counts:
// channel -> uploads playlist -> playlist items -> per-video statistics.
func (c *Client) RecentVideos(ctx context.Context, maxResults int64) ([]Video, error) {
	channels, err := c.srv.Channels.List([]string{"contentDetails"}).
		Id(c.channelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapErr(err)
	}
	if len(channels.Items) == 0 || channels.Items[0].ContentDetails == nil ||
		channels.Items[0].ContentDetails.RelatedPlaylists == nil {
		return []Video{}, nil
	}

	uploads := channels.Items[0].ContentDetails.RelatedPlaylists.Uploads
	if uploads == "" {
		return []Video{}, nil
	}

	playlist, err := c.srv.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(uploads).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapErr(err)
	}

	ids := make([]string, 0, len(playlist.Items))
	for _, item := range playlist.Items {
		if item.Snippet != nil && item.Snippet.ResourceId != nil {
			ids = append(ids, item.Snippet.ResourceId.VideoId)
		}
	}
	if len(ids) == 0 {
		return []Video{}, nil
	}

	stats, err := c.srv.Videos.List([]string{"statistics", "snippet"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapErr(err)
	}

	viewCounts := make(map[string]uint64, len(stats.Items))
	for _, item := range stats.Items {
		if item.Statistics != nil {
			viewCounts[item.Id] = item.Statistics.ViewCount
		}
	}

	videos := make([]Video, 0, len(playlist.Items))
	for _, item := range playlist.Items {
		if item.Snippet == nil || item.Snippet.ResourceId == nil {
			continue
		}
		videoID := item.Snippet.ResourceId.VideoId
		title := item.Snippet.Title
		if title == "" {
			title = c.untitled
		}
		videos = append(videos, Video{
			ID:          videoID,
			VideoID:     videoID,
			Title:       title,
			Description: item.Snippet.Description,
			Thumbnail:   thumbnailURL(videoID),
			PublishedAt: item.Snippet.PublishedAt,
			ViewCount:   strconv.FormatUint(viewCounts[videoID], 10),
		})
	}

	return videos, nil
}

func wrapErr(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &upstream.Error{StatusCode: gerr.Code, Body: gerr.Body, Err: err}
	}
	return &upstream.Error{Err: err}
}

// thumbnailURL uses the direct image host; hqdefault exists for every
// video, unlike the higher resolutions.
func thumbnailURL(videoID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", strings.TrimSpace(videoID))
}
