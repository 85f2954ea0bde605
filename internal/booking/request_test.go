package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/iliyamo/river-cruise-booking/internal/model"
)

func validRaw() RawRequest {
	return RawRequest{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "0820000000",
		CruiseDate: "2024-06-01T10:00",
		Seats:      "3",
	}
}

func TestParseRequestValid(t *testing.T) {
	req, err := ParseRequest(validRaw())
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if req.Name != "Jane Doe" || req.Email != "jane@example.com" || req.Phone != "0820000000" {
		t.Fatalf("unexpected fields: %+v", req)
	}
	if req.Seats != 3 {
		t.Fatalf("seats = %d, want 3", req.Seats)
	}
	want := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	if !req.CruiseDate.Equal(want) {
		t.Fatalf("cruise date = %v, want %v", req.CruiseDate, want)
	}
}

func TestParseRequestMissingFields(t *testing.T) {
	fields := []func(*RawRequest){
		func(r *RawRequest) { r.Name = "" },
		func(r *RawRequest) { r.Email = "" },
		func(r *RawRequest) { r.Phone = "   " },
		func(r *RawRequest) { r.CruiseDate = "" },
		func(r *RawRequest) { r.Seats = "" },
	}
	for i, blank := range fields {
		raw := validRaw()
		blank(&raw)
		if _, err := ParseRequest(raw); !errors.Is(err, ErrIncompleteSubmission) {
			t.Errorf("case %d: err = %v, want ErrIncompleteSubmission", i, err)
		}
	}
}

func TestParseRequestCompletenessBeforeOtherChecks(t *testing.T) {
	// A blank name must win over the broken email.
	raw := validRaw()
	raw.Name = ""
	raw.Email = "not-an-email"
	if _, err := ParseRequest(raw); !errors.Is(err, ErrIncompleteSubmission) {
		t.Fatalf("err = %v, want ErrIncompleteSubmission", err)
	}
}

func TestParseRequestInvalidEmail(t *testing.T) {
	for _, bad := range []string{"not-an-email", "jane@", "@example.com", "Jane <jane@example.com>"} {
		raw := validRaw()
		raw.Email = bad
		if _, err := ParseRequest(raw); !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("email %q: err = %v, want ErrInvalidEmail", bad, err)
		}
	}
}

func TestParseRequestInvalidSeats(t *testing.T) {
	for _, bad := range []string{"0", "-3", "two", "2.5"} {
		raw := validRaw()
		raw.Seats = bad
		if _, err := ParseRequest(raw); !errors.Is(err, ErrInvalidSeatCount) {
			t.Errorf("seats %q: err = %v, want ErrInvalidSeatCount", bad, err)
		}
	}
}

func TestParseRequestInvalidDate(t *testing.T) {
	raw := validRaw()
	raw.CruiseDate = "next saturday"
	if _, err := ParseRequest(raw); !errors.Is(err, ErrInvalidCruiseDate) {
		t.Fatalf("err = %v, want ErrInvalidCruiseDate", err)
	}
}

func TestParseRequestAcceptsRFC3339(t *testing.T) {
	raw := validRaw()
	raw.CruiseDate = "2024-06-01T10:00:00+02:00"
	req, err := ParseRequest(raw)
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	want := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	if !req.CruiseDate.Equal(want) {
		t.Fatalf("cruise date = %v, want %v", req.CruiseDate, want)
	}
}

func TestSanitizeStripsMarkupAndControlBytes(t *testing.T) {
	raw := validRaw()
	raw.Name = "  Jane <script>alert(1)</script>Doe\x00\x07 "
	raw.Phone = "082\t000\n0000"
	req, err := ParseRequest(raw)
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if req.Name != "Jane alert(1)Doe" {
		t.Fatalf("name = %q", req.Name)
	}
	if req.Phone != "082 000 0000" {
		t.Fatalf("phone = %q", req.Phone)
	}
}

func TestMatchesSlot(t *testing.T) {
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	slots := []model.Slot{
		{Start: start.Add(-24 * time.Hour), End: start.Add(-22 * time.Hour)},
		{Start: start, End: start.Add(2 * time.Hour)},
	}
	req := Request{CruiseDate: start}
	if s, ok := req.MatchesSlot(slots); !ok || !s.Start.Equal(start) {
		t.Fatalf("expected match on %v", start)
	}
	req.CruiseDate = start.Add(time.Minute)
	if _, ok := req.MatchesSlot(slots); ok {
		t.Fatal("unexpected match one minute off the slot start")
	}
}
