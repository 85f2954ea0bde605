package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iliyamo/river-cruise-booking/internal/model"
)

// Authorization-code flow for connecting the operator's Google account.
// AuthURL is handed to the admin, Google redirects back with a code, and
// Exchange turns the code into the token pair that everything else uses.

// AuthURL builds the Google consent URL. access_type=offline with a
// forced prompt is required to receive a refresh token on every connect,
// not only the first one.
func (c *Client) AuthURL(state string) string {
	q := url.Values{}
	q.Set("client_id", c.cfg.ClientID)
	q.Set("redirect_uri", c.cfg.RedirectURL)
	q.Set("response_type", "code")
	q.Set("scope", calendarScope)
	q.Set("access_type", "offline")
	q.Set("prompt", "consent")
	q.Set("state", state)
	return c.authURL + "?" + q.Encode()
}

// Exchange trades an authorization code for a token pair and stores it.
func (c *Client) Exchange(ctx context.Context, code string) error {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("redirect_uri", c.cfg.RedirectURL)

	tok, err := c.tokenRequest(ctx, form)
	if err != nil {
		return err
	}
	if tok.RefreshToken == "" {
		return errors.New("calendar: token response missing refresh token")
	}
	return c.tokens.Store(ctx, tok)
}

// refresh obtains a new access token using the stored refresh token.
// Google does not return the refresh token again on this grant, so the
// existing one is carried over.
func (c *Client) refresh(ctx context.Context, old model.CalendarToken) (model.CalendarToken, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", old.RefreshToken)
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)

	tok, err := c.tokenRequest(ctx, form)
	if err != nil {
		return model.CalendarToken{}, err
	}
	if tok.RefreshToken == "" {
		tok.RefreshToken = old.RefreshToken
	}
	return tok, nil
}

func (c *Client) tokenRequest(ctx context.Context, form url.Values) (model.CalendarToken, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return model.CalendarToken{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.hc.Do(req)
	if err != nil {
		return model.CalendarToken{}, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return model.CalendarToken{}, fmt.Errorf("calendar: token endpoint http %d: %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return model.CalendarToken{}, fmt.Errorf("calendar: parse token response: %w", err)
	}
	if parsed.AccessToken == "" {
		return model.CalendarToken{}, errors.New("calendar: token response missing access token")
	}
	return model.CalendarToken{
		AccessToken:  parsed.AccessToken,
		RefreshToken: parsed.RefreshToken,
		ExpiresAt:    c.now().UTC().Add(time.Duration(parsed.ExpiresIn) * time.Second),
	}, nil
}
