package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/river-cruise-booking/internal/calendar"
	"github.com/iliyamo/river-cruise-booking/internal/model"
)

type fakeSlotSource struct {
	slots []model.Slot
	err   error
}

func (s *fakeSlotSource) ListSlots(context.Context, time.Time, time.Time) ([]model.Slot, error) {
	return s.slots, s.err
}

func listSlots(t *testing.T, h *SlotsHandler) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/slots", nil)
	rec := httptest.NewRecorder()
	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("List: %v", err)
	}
	return rec
}

func TestListSlotsNotConnectedMessage(t *testing.T) {
	h := NewSlotsHandler(&fakeSlotSource{err: calendar.ErrNotConnected})
	rec := listSlots(t, h)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Google Calendar not connected.") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestListSlotsNilSource(t *testing.T) {
	h := NewSlotsHandler(nil)
	rec := listSlots(t, h)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Google Calendar not connected.") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestListSlotsProviderError(t *testing.T) {
	h := NewSlotsHandler(&fakeSlotSource{err: errors.New("http 500")})
	rec := listSlots(t, h)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestListSlotsReturnsSlots(t *testing.T) {
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	h := NewSlotsHandler(&fakeSlotSource{slots: []model.Slot{{Start: start, End: start.Add(2 * time.Hour)}}})
	rec := listSlots(t, h)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"2024-06-01T10:00:00Z"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
