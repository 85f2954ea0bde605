package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/river-cruise-booking/internal/model"
	"github.com/iliyamo/river-cruise-booking/internal/utils"
)

// CalendarTokenRepo persists the single OAuth token row for the
// connected calendar account. The refresh token is sealed with the
// configured key before it touches the database; the short-lived access
// token is stored as-is.
type CalendarTokenRepo struct {
	DB      *sql.DB
	SealKey []byte
}

func NewCalendarTokenRepo(db *sql.DB, sealKey []byte) *CalendarTokenRepo {
	return &CalendarTokenRepo{DB: db, SealKey: sealKey}
}

// Store writes the token, replacing whatever was stored before. Called
// both after the initial connect and after every transparent refresh.
func (r *CalendarTokenRepo) Store(ctx context.Context, t model.CalendarToken) error {
	sealed, err := utils.Seal(r.SealKey, t.RefreshToken)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO calendar_tokens (id, access_token, refresh_token, expires_at) VALUES (1, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE access_token=VALUES(access_token), refresh_token=VALUES(refresh_token), expires_at=VALUES(expires_at)`,
		t.AccessToken, sealed, t.ExpiresAt.UTC())
	return err
}

// Load returns the stored token. ErrTokenNotFound means the calendar has
// never been connected; callers surface that as "not connected" rather
// than as a failure.
func (r *CalendarTokenRepo) Load(ctx context.Context) (model.CalendarToken, error) {
	var t model.CalendarToken
	err := r.DB.QueryRowContext(ctx,
		`SELECT access_token, refresh_token, expires_at, updated_at FROM calendar_tokens WHERE id = 1`,
	).Scan(&t.AccessToken, &t.RefreshToken, &t.ExpiresAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CalendarToken{}, ErrTokenNotFound
	}
	if err != nil {
		return model.CalendarToken{}, err
	}
	t.RefreshToken, err = utils.Unseal(r.SealKey, t.RefreshToken)
	if err != nil {
		return model.CalendarToken{}, err
	}
	return t, nil
}
