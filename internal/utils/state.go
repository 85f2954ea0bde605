package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The OAuth connect flow round-trips a state value through Google to tie
// the callback to a request we actually issued. The state is a signed,
// short-lived JWT so the service stays stateless between the two legs.

const statePurpose = "calendar-connect"

// NewStateToken signs a state token valid for the given TTL.
func NewStateToken(secret string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"purpose": statePurpose,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// VerifyStateToken checks signature, expiry and purpose of a state token
// returned by the OAuth callback.
func VerifyStateToken(secret, raw string) error {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return errors.New("invalid state token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || claims["purpose"] != statePurpose {
		return errors.New("invalid state token")
	}
	return nil
}
