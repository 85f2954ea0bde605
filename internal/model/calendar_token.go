package model

import "time"

// CalendarToken holds the OAuth2 token pair for the connected Google
// Calendar account. Exactly one row exists once the calendar has been
// connected; the access token is replaced in place whenever a refresh
// succeeds. The refresh token is sealed before it reaches the database.
//
// Fields:
//  AccessToken  – short-lived bearer token for calendar API calls.
//  RefreshToken – long-lived token used to obtain new access tokens.
//  ExpiresAt    – when the access token expires (UTC).
//  UpdatedAt    – last time the row was written.
type CalendarToken struct {
	AccessToken  string    // calendar_tokens.access_token
	RefreshToken string    // calendar_tokens.refresh_token (sealed at rest)
	ExpiresAt    time.Time // calendar_tokens.expires_at
	UpdatedAt    time.Time // calendar_tokens.updated_at
}

// Expired reports whether the access token should be refreshed before
// use. A small skew is applied so a token about to lapse mid-request is
// treated as already expired.
func (t CalendarToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt.Add(-30 * time.Second))
}
