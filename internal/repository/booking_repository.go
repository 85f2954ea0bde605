package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/river-cruise-booking/internal/model"
)

// BookingRepo provides access to the bookings table. Bookings are
// insert-only: nothing in the service updates or deletes a row once it
// exists, and duplicate submissions become distinct rows. All timestamp
// fields are stored in UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Insert stores a booking and populates the generated ID and the
// server-assigned creation timestamp on the provided record. The
// created_at column is filled by its DEFAULT, so the value is read back
// rather than computed here; the database clock is the single source of
// truth for when a booking was placed.
func (r *BookingRepo) Insert(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings (name, email, phone, cruise_date, seats, total_cost) VALUES (?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, b.Name, b.Email, b.Phone, b.CruiseDate, b.Seats, b.TotalCost)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	const sel = `SELECT created_at FROM bookings WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, b.ID).Scan(&b.CreatedAt)
}

// ListRecent returns the most recently created bookings, newest first,
// capped at limit. Used by the admin listing only.
func (r *BookingRepo) ListRecent(ctx context.Context, limit int) ([]model.Booking, error) {
	if limit <= 0 {
		limit = 50
	}
	const q = `SELECT id, name, email, phone, cruise_date, seats, total_cost, created_at
		FROM bookings ORDER BY id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0, limit)
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.CruiseDate, &b.Seats, &b.TotalCost, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
