package repository

import "errors"

// Sentinel errors returned by repositories so handlers can map database
// conditions to HTTP responses without string matching.
var (
	// ErrTokenNotFound means no calendar token row exists yet, i.e. the
	// Google account has never been connected.
	ErrTokenNotFound = errors.New("calendar token not found")
)
