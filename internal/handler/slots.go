package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/river-cruise-booking/internal/booking"
	"github.com/iliyamo/river-cruise-booking/internal/calendar"
)

// SlotsHandler serves the list of bookable cruise slots for the next
// seven days. The route normally sits behind the Redis response cache
// so browsing customers do not hammer the calendar API.
type SlotsHandler struct {
	Slots booking.SlotSource
}

func NewSlotsHandler(s booking.SlotSource) *SlotsHandler { return &SlotsHandler{Slots: s} }

// List handles GET /v1/slots. When the calendar is not connected the
// response still succeeds and carries the message the form shows as a
// disabled option.
func (h *SlotsHandler) List(c echo.Context) error {
	if h.Slots == nil {
		return c.JSON(http.StatusOK, echo.Map{"error": "Google Calendar not connected."})
	}
	now := time.Now().UTC()
	slots, err := h.Slots.ListSlots(c.Request().Context(), now, now.Add(7*24*time.Hour))
	if err != nil {
		if errors.Is(err, calendar.ErrNotConnected) {
			return c.JSON(http.StatusOK, echo.Map{"error": "Google Calendar not connected."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load slots"})
	}
	return c.JSON(http.StatusOK, echo.Map{"slots": slots})
}
