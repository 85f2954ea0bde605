package model

import "time"

// Booking records a single river-cruise booking submitted through the
// public form. A booking is written exactly once when the submission is
// accepted and is never updated or deleted afterwards; there is no
// cancellation path. Duplicate submissions with identical fields are
// stored as distinct rows.
//
// Fields:
//  ID         – primary key identifier.
//  Name       – full name of the customer.
//  Email      – customer email address, used for the confirmation.
//  Phone      – customer cell number.
//  CruiseDate – start of the chosen cruise slot.
//  Seats      – number of seats booked (always >= 1).
//  TotalCost  – computed total in rand, minimum charge applied.
//  CreatedAt  – server-assigned creation timestamp (UTC).
type Booking struct {
	ID         uint64    // bookings.id
	Name       string    // bookings.name
	Email      string    // bookings.email
	Phone      string    // bookings.phone
	CruiseDate time.Time // bookings.cruise_date
	Seats      int       // bookings.seats
	TotalCost  int64     // bookings.total_cost
	CreatedAt  time.Time // bookings.created_at
}
