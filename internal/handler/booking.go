package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/river-cruise-booking/internal/booking"
)

// BookingHandler exposes the public submission endpoint. All the actual
// work happens in the processor; the handler only translates between
// the form encoding and the response envelope.
type BookingHandler struct {
	Processor *booking.Processor
}

func NewBookingHandler(p *booking.Processor) *BookingHandler {
	if p == nil {
		panic("nil processor passed to NewBookingHandler")
	}
	return &BookingHandler{Processor: p}
}

// Submit handles POST /v1/bookings. The body is a form-encoded
// submission with the five booking fields; the response is the
// {success, data} envelope with either the confirmation message or a
// short error string.
func (h *BookingHandler) Submit(c echo.Context) error {
	raw := booking.RawRequest{
		Name:       c.FormValue("name"),
		Email:      c.FormValue("email"),
		Phone:      c.FormValue("phone"),
		CruiseDate: c.FormValue("cruise_date"),
		Seats:      c.FormValue("seats"),
	}

	conf, err := h.Processor.Submit(c.Request().Context(), raw)
	if err != nil {
		return respondFailure(c, booking.UserMessage(err))
	}
	return respondSuccess(c, conf.Message)
}
