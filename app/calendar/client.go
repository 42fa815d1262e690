package calendar

import (
	"context"
	"errors"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/manantialdevida/web/app/upstream"
)

// Client fetches event instances from the Google Calendar API. Recurring
// events are requested pre-expanded (singleEvents) and provider-ordered
// by start time, so the pipeline receives one instance per occurrence.
type Client struct {
	srv        *gcal.Service
	calendarID string
}

func NewClient(ctx context.Context, apiKey, calendarID string) (*Client, error) {
	if apiKey == "" || calendarID == "" {
		return nil, &upstream.ConfigError{
			Service:     "Google Calendar",
			HasAPIKey:   apiKey != "",
			HasTargetID: calendarID != "",
		}
	}

	srv, err := gcal.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &upstream.Error{Err: err}
	}

	return &Client{srv: srv, calendarID: calendarID}, nil
}

type ListOptions struct {
	TimeMin    time.Time
	TimeMax    time.Time // zero value means no upper bound
	MaxResults int64
}

// List issues a single outbound request; a failure surfaces immediately
// as an upstream error with the provider's status attached.
func (c *Client) List(ctx context.Context, opts ListOptions) ([]*gcal.Event, error) {
	call := c.srv.Events.List(c.calendarID).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(opts.TimeMin.Format(time.RFC3339)).
		MaxResults(opts.MaxResults).
		Context(ctx)

	if !opts.TimeMax.IsZero() {
		call = call.TimeMax(opts.TimeMax.Format(time.RFC3339))
	}

	res, err := call.Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return nil, &upstream.Error{StatusCode: gerr.Code, Body: gerr.Body, Err: err}
		}
		return nil, &upstream.Error{Err: err}
	}

	return res.Items, nil
}
