package booking

import (
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/river-cruise-booking/internal/model"
)

// RawRequest carries the five form fields exactly as they arrive from the
// client. Everything is a string at this point; ParseRequest is the only
// way to turn a RawRequest into something the rest of the pipeline will
// touch.
type RawRequest struct {
	Name       string
	Email      string
	Phone      string
	CruiseDate string
	Seats      string
}

// Request is a fully validated submission. All fields have been
// sanitized and typed; Seats is always >= 1.
type Request struct {
	Name       string
	Email      string
	Phone      string
	CruiseDate time.Time
	Seats      int
}

// Accepted layouts for the cruise_date field. The form posts the slot
// start verbatim, which is RFC 3339 when it came from the calendar and
// the datetime-local format when typed by hand.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04"}

// ParseRequest validates a raw submission and returns the typed request.
// The completeness check runs before everything else: a blank field short
// circuits with ErrIncompleteSubmission regardless of what the other
// fields contain. Name and phone are sanitized, never rejected; email,
// seat count and cruise date must parse.
func ParseRequest(raw RawRequest) (Request, error) {
	name := sanitizeText(raw.Name)
	email := strings.TrimSpace(raw.Email)
	phone := sanitizeText(raw.Phone)
	date := strings.TrimSpace(raw.CruiseDate)
	seatsField := strings.TrimSpace(raw.Seats)

	if name == "" || email == "" || phone == "" || date == "" || seatsField == "" {
		return Request{}, ErrIncompleteSubmission
	}

	if !validEmail(email) {
		return Request{}, ErrInvalidEmail
	}

	// The legacy form coerced seats with a permissive integer cast, which
	// let a zero-seat booking through at the minimum charge. Reject
	// anything that is not a whole number >= 1.
	seats, err := strconv.Atoi(seatsField)
	if err != nil || seats < 1 {
		return Request{}, ErrInvalidSeatCount
	}

	when, err := parseCruiseDate(date)
	if err != nil {
		return Request{}, ErrInvalidCruiseDate
	}

	return Request{
		Name:       name,
		Email:      email,
		Phone:      phone,
		CruiseDate: when,
		Seats:      seats,
	}, nil
}

// MatchesSlot reports whether the requested cruise date is the start of
// one of the offered slots, and returns that slot when it is.
func (r Request) MatchesSlot(slots []model.Slot) (model.Slot, bool) {
	for _, s := range slots {
		if s.Start.Equal(r.CruiseDate) {
			return s, true
		}
	}
	return model.Slot{}, false
}

func parseCruiseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// validEmail checks standard address syntax. mail.ParseAddress also
// accepts the "Name <user@host>" form, which is not a bare address, so
// the parsed address must round-trip to the input.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}

// sanitizeText mirrors what the form layer used to do server-side:
// drop anything that looks like markup, strip control bytes and collapse
// runs of whitespace. Content is never a reason to reject.
func sanitizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case inTag:
			// swallow tag contents
		case r < 0x20 || r == 0x7f:
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
