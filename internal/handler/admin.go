package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/river-cruise-booking/internal/calendar"
	"github.com/iliyamo/river-cruise-booking/internal/repository"
	"github.com/iliyamo/river-cruise-booking/internal/utils"
)

// AdminHandler covers the operator surface: connecting the Google
// account that holds the cruise calendar and listing recent bookings.
// Connect and Bookings sit behind the admin key middleware; Callback is
// reached by Google's redirect and is protected by the signed state
// token instead.
type AdminHandler struct {
	Calendar    *calendar.Client
	Bookings    *repository.BookingRepo
	StateSecret string
}

func NewAdminHandler(cal *calendar.Client, bookings *repository.BookingRepo, stateSecret string) *AdminHandler {
	return &AdminHandler{Calendar: cal, Bookings: bookings, StateSecret: stateSecret}
}

// Connect handles GET /v1/admin/calendar/connect. It returns the Google
// consent URL the operator opens in a browser. The state parameter is a
// short-lived signed token so the callback can verify the flow started
// here.
func (h *AdminHandler) Connect(c echo.Context) error {
	if h.Calendar == nil || !h.Calendar.Configured() {
		return c.JSON(http.StatusConflict, echo.Map{"error": "Google OAuth client is not configured."})
	}
	state, err := utils.NewStateToken(h.StateSecret, 10*time.Minute)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create state token"})
	}
	return c.JSON(http.StatusOK, echo.Map{"auth_url": h.Calendar.AuthURL(state)})
}

// Callback handles GET /v1/admin/calendar/callback, the OAuth redirect
// target. It verifies the state, exchanges the code and stores the
// token pair; after this the slot select and the calendar sink come
// alive.
func (h *AdminHandler) Callback(c echo.Context) error {
	if h.Calendar == nil || !h.Calendar.Configured() {
		return c.JSON(http.StatusConflict, echo.Map{"error": "Google OAuth client is not configured."})
	}
	if err := utils.VerifyStateToken(h.StateSecret, c.QueryParam("state")); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired state"})
	}
	code := c.QueryParam("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing authorization code"})
	}
	if err := h.Calendar.Exchange(c.Request().Context(), code); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "token exchange failed"})
	}
	return c.String(http.StatusOK, "Google Calendar Connected!")
}

// ListBookings handles GET /v1/admin/bookings and returns the most
// recent bookings, newest first.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	bookings, err := h.Bookings.ListRecent(c.Request().Context(), 50)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]echo.Map, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, echo.Map{
			"id":          b.ID,
			"name":        b.Name,
			"email":       b.Email,
			"phone":       b.Phone,
			"cruise_date": b.CruiseDate.UTC().Format(time.RFC3339),
			"seats":       b.Seats,
			"total_cost":  b.TotalCost,
			"created_at":  b.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": out})
}
