// Package calendar is a minimal Google Calendar client covering the two
// calls this service needs: listing upcoming events as bookable slots
// and inserting a booking as an event. It speaks the REST API directly
// and handles the OAuth2 token lifecycle itself, refreshing the access
// token transparently and persisting the refreshed token back through
// the token store.
package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iliyamo/river-cruise-booking/internal/model"
)

const (
	defaultBaseURL  = "https://www.googleapis.com/calendar/v3"
	defaultTokenURL = "https://oauth2.googleapis.com/token"
	defaultAuthURL  = "https://accounts.google.com/o/oauth2/v2/auth"
	calendarScope   = "https://www.googleapis.com/auth/calendar"
)

// ErrNotConnected means no OAuth token has been stored yet. The form
// renders this as a disabled option, not as a failure.
var ErrNotConnected = errors.New("google calendar not connected")

// TokenStore loads and saves the OAuth token pair. Implemented by
// repository.CalendarTokenRepo.
type TokenStore interface {
	Load(ctx context.Context) (model.CalendarToken, error)
	Store(ctx context.Context, t model.CalendarToken) error
}

// Config carries the OAuth2 client settings and the calendar to operate
// on.
type Config struct {
	ClientID      string
	ClientSecret  string
	RedirectURL   string
	CalendarID    string
	TimeZone      string
	EventDuration time.Duration
}

// Client is safe for concurrent use; all state lives in the token store.
type Client struct {
	hc     *http.Client
	cfg    Config
	tokens TokenStore

	baseURL  string
	tokenURL string
	authURL  string
	now      func() time.Time
}

// New builds a Client. The token store must be non-nil.
func New(cfg Config, tokens TokenStore) *Client {
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.EventDuration <= 0 {
		cfg.EventDuration = 2 * time.Hour
	}
	return &Client{
		hc:       &http.Client{Timeout: 15 * time.Second},
		cfg:      cfg,
		tokens:   tokens,
		baseURL:  defaultBaseURL,
		tokenURL: defaultTokenURL,
		authURL:  defaultAuthURL,
		now:      time.Now,
	}
}

// Configured reports whether OAuth client credentials are present at
// all. Without them the connect flow cannot start.
func (c *Client) Configured() bool {
	return c.cfg.ClientID != "" && c.cfg.ClientSecret != "" && c.cfg.RedirectURL != ""
}

// event mirrors the wire format of the Calendar API for the fields this
// service touches.
type event struct {
	Summary     string     `json:"summary,omitempty"`
	Description string     `json:"description,omitempty"`
	Start       eventTime  `json:"start"`
	End         eventTime  `json:"end"`
	Attendees   []attendee `json:"attendees,omitempty"`
}

type eventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

type attendee struct {
	Email string `json:"email"`
}

// ListSlots returns the calendar's events between from and to as
// bookable slots, ordered by start time. All-day events carry no
// dateTime and are skipped; a cruise slot always has a concrete start
// and end.
func (c *Client) ListSlots(ctx context.Context, from, to time.Time) ([]model.Slot, error) {
	tok, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("timeMin", from.UTC().Format(time.RFC3339))
	q.Set("timeMax", to.UTC().Format(time.RFC3339))
	q.Set("singleEvents", "true")
	q.Set("orderBy", "startTime")

	u := fmt.Sprintf("%s/calendars/%s/events?%s", c.baseURL, url.PathEscape(c.cfg.CalendarID), q.Encode())
	body, err := c.doJSON(ctx, http.MethodGet, u, tok, nil)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Items []event `json:"items"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("calendar: parse events: %w", err)
	}

	out := make([]model.Slot, 0, len(parsed.Items))
	for _, ev := range parsed.Items {
		if ev.Start.DateTime == "" || ev.End.DateTime == "" {
			continue
		}
		start, err := time.Parse(time.RFC3339, ev.Start.DateTime)
		if err != nil {
			continue
		}
		end, err := time.Parse(time.RFC3339, ev.End.DateTime)
		if err != nil {
			continue
		}
		out = append(out, model.Slot{Start: start.UTC(), End: end.UTC()})
	}
	return out, nil
}

// AddBooking registers a stored booking as a calendar event with the
// customer as attendee. The event length is the configured cruise
// duration.
func (c *Client) AddBooking(ctx context.Context, b model.Booking) error {
	tok, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	ev := event{
		Summary:     "River Cruise Booking",
		Description: fmt.Sprintf("Booking by %s (%d seats)", b.Name, b.Seats),
		Start:       eventTime{DateTime: b.CruiseDate.UTC().Format(time.RFC3339), TimeZone: c.cfg.TimeZone},
		End:         eventTime{DateTime: b.CruiseDate.Add(c.cfg.EventDuration).UTC().Format(time.RFC3339), TimeZone: c.cfg.TimeZone},
		Attendees:   []attendee{{Email: b.Email}},
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	u := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(c.cfg.CalendarID))
	_, err = c.doJSON(ctx, http.MethodPost, u, tok, payload)
	return err
}

// accessToken returns a usable bearer token, refreshing and persisting
// it first when the stored one has expired.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	if c.tokens == nil {
		return "", ErrNotConnected
	}
	tok, err := c.tokens.Load(ctx)
	if err != nil {
		return "", ErrNotConnected
	}
	if !tok.Expired(c.now().UTC()) {
		return tok.AccessToken, nil
	}
	refreshed, err := c.refresh(ctx, tok)
	if err != nil {
		return "", err
	}
	if err := c.tokens.Store(ctx, refreshed); err != nil {
		// The refreshed token still works for this call even if the
		// write failed; the next request will refresh again.
		return refreshed.AccessToken, nil
	}
	return refreshed.AccessToken, nil
}

func (c *Client) doJSON(ctx context.Context, method, u, token string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("calendar: http %d: %s", resp.StatusCode, string(b))
	}
	return b, nil
}
