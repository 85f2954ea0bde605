package model

import "time"

// Slot is a calendar time window representing cruise availability.
// Slots are read from the connected calendar and offered to customers
// in the booking form; they are never stored locally.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
