// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a booking has been stored.
// It carries everything downstream consumers need to email the customer
// and write the audit line without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CruiseDate  string `json:"cruise_date"`
	Seats       int    `json:"seats"`
	TotalCost   int64  `json:"total_cost"`
	ConfirmedAt string `json:"confirmed_at"`
}
