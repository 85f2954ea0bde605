package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/iliyamo/river-cruise-booking/internal/model"
)

// Collaborator contracts. The processor owns these interfaces and is
// handed concrete implementations at construction; it never reaches for
// package-level state.

// Store durably inserts an accepted booking. The implementation assigns
// the surrogate id and the creation timestamp.
type Store interface {
	Insert(ctx context.Context, b *model.Booking) error
}

// Notifier delivers the confirmation for a stored booking. Calls are
// fire-and-forget: a failure is logged by the processor and never
// surfaced to the customer.
type Notifier interface {
	BookingConfirmed(ctx context.Context, b model.Booking) error
}

// CalendarSink registers a stored booking as a calendar event.
type CalendarSink interface {
	AddBooking(ctx context.Context, b model.Booking) error
}

// SlotSource lists available cruise slots inside a time window. An error
// means the provider is not connected; the processor then accepts the
// submitted date as entered.
type SlotSource interface {
	ListSlots(ctx context.Context, from, to time.Time) ([]model.Slot, error)
}

// slotWindow is how far ahead slots are offered and therefore how far
// ahead a submitted date is checked against the calendar.
const slotWindow = 7 * 24 * time.Hour

// Processor validates, prices and submits bookings. Notifier, Calendar
// and Slots are optional; a nil collaborator simply skips that step.
type Processor struct {
	pricing  PricingPolicy
	store    Store
	notifier Notifier
	calendar CalendarSink
	slots    SlotSource

	now func() time.Time
}

// Confirmation is the success payload for an accepted submission.
type Confirmation struct {
	Booking model.Booking
	Message string
}

// NewProcessor builds a Processor. The store must be non-nil; the other
// collaborators may be nil.
func NewProcessor(pricing PricingPolicy, store Store, notifier Notifier, calendar CalendarSink, slots SlotSource) *Processor {
	if store == nil {
		panic("nil store passed to NewProcessor")
	}
	return &Processor{
		pricing:  pricing,
		store:    store,
		notifier: notifier,
		calendar: calendar,
		slots:    slots,
		now:      time.Now,
	}
}

// Submit runs the full pipeline for one raw form submission:
// validate -> price -> insert -> notify -> calendar. Validation failures
// return before any side effect. Once the insert has succeeded the
// booking is placed; notifier and calendar failures after that point are
// logged and the customer still gets the confirmation. There is no
// rollback between the steps.
func (p *Processor) Submit(ctx context.Context, raw RawRequest) (Confirmation, error) {
	req, err := ParseRequest(raw)
	if err != nil {
		return Confirmation{}, err
	}

	if err := p.checkSlot(ctx, req); err != nil {
		return Confirmation{}, err
	}

	b := model.Booking{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		CruiseDate: req.CruiseDate,
		Seats:      req.Seats,
		TotalCost:  p.pricing.Price(req.Seats),
	}

	if err := p.store.Insert(ctx, &b); err != nil {
		log.Printf("booking: insert failed: %v", err)
		return Confirmation{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// Point of no return: the booking is placed.
	if p.notifier != nil {
		if err := p.notifier.BookingConfirmed(ctx, b); err != nil {
			log.Printf("booking: confirmation notify failed for booking %d: %v", b.ID, err)
		}
	}
	if p.calendar != nil {
		if err := p.calendar.AddBooking(ctx, b); err != nil {
			log.Printf("booking: calendar event failed for booking %d: %v", b.ID, err)
		}
	}

	return Confirmation{
		Booking: b,
		Message: fmt.Sprintf("Booking confirmed. Total cost: %d.", b.TotalCost),
	}, nil
}

// checkSlot enforces slot membership when the calendar offers slots for
// the booking window. When the provider is unavailable, or it returns an
// empty window, manual date entry stays allowed and the date passes as
// entered.
func (p *Processor) checkSlot(ctx context.Context, req Request) error {
	if p.slots == nil {
		return nil
	}
	now := p.now().UTC()
	slots, err := p.slots.ListSlots(ctx, now, now.Add(slotWindow))
	if err != nil {
		log.Printf("booking: slot provider unavailable, accepting date as entered: %v", err)
		return nil
	}
	if len(slots) == 0 {
		return nil
	}
	if _, ok := req.MatchesSlot(slots); !ok {
		return ErrSlotUnavailable
	}
	return nil
}
