package handler

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/river-cruise-booking/internal/booking"
	"github.com/iliyamo/river-cruise-booking/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var formTmpl = template.Must(template.ParseFS(templateFS, "templates/form.html"))

// FormHandler renders the public booking page. Slots for the coming
// week populate the cruise date select; when the calendar is not
// connected the select shows a single disabled option and the customer
// types a date instead.
type FormHandler struct {
	Slots   booking.SlotSource
	Pricing booking.PricingPolicy
}

func NewFormHandler(s booking.SlotSource, pricing booking.PricingPolicy) *FormHandler {
	return &FormHandler{Slots: s, Pricing: pricing}
}

type formData struct {
	Slots         []model.Slot
	SlotError     string
	PricePerSeat  int64
	MinimumCharge int64
}

// Render handles GET /.
func (h *FormHandler) Render(c echo.Context) error {
	data := formData{
		PricePerSeat:  h.Pricing.PricePerSeat,
		MinimumCharge: h.Pricing.MinimumCharge,
	}

	if h.Slots == nil {
		data.SlotError = "Google Calendar not connected."
	} else {
		now := time.Now().UTC()
		slots, err := h.Slots.ListSlots(c.Request().Context(), now, now.Add(7*24*time.Hour))
		if err != nil {
			log.Printf("form: slot lookup failed: %v", err)
			data.SlotError = "Google Calendar not connected."
		} else {
			data.Slots = slots
		}
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return formTmpl.Execute(c.Response(), data)
}
