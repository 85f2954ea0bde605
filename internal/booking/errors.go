// Package booking implements the request validation and pricing pipeline
// for river-cruise bookings. The processor validates an untrusted form
// submission, computes the total cost, persists the booking and hands the
// confirmation off to the notifier and calendar collaborators.
package booking

import "errors"

// Validation and submission errors. Validation errors are returned before
// any side effect has happened; ErrPersistence is returned when the store
// rejects an otherwise valid booking.
var (
	ErrIncompleteSubmission = errors.New("incomplete submission")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidSeatCount     = errors.New("invalid seat count")
	ErrSlotUnavailable      = errors.New("cruise date does not match an offered slot")
	ErrInvalidCruiseDate    = errors.New("unparseable cruise date")
	ErrPersistence          = errors.New("booking could not be saved")
)

// UserMessage maps a submission error to the short human-readable string
// returned in the response envelope. Nothing structured crosses the
// endpoint boundary; clients only ever see these messages.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrIncompleteSubmission):
		return "Incomplete form submission."
	case errors.Is(err, ErrInvalidEmail):
		return "Invalid email address."
	case errors.Is(err, ErrInvalidSeatCount):
		return "Number of seats must be at least 1."
	case errors.Is(err, ErrInvalidCruiseDate):
		return "Invalid cruise date."
	case errors.Is(err, ErrSlotUnavailable):
		return "Selected cruise date is not available."
	case errors.Is(err, ErrPersistence):
		return "Unable to save your booking. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
