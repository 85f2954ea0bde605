package booking

import "testing"

func TestPriceAppliesMinimumCharge(t *testing.T) {
	p := DefaultPricing()

	cases := []struct {
		seats int
		want  int64
	}{
		{1, 1000},
		{2, 1000},
		{5, 1000},
		{6, 1200},
		{10, 2000},
		{100, 20000},
	}
	for _, c := range cases {
		if got := p.Price(c.seats); got != c.want {
			t.Errorf("Price(%d) = %d, want %d", c.seats, got, c.want)
		}
	}
}

func TestPriceNeverBelowFloor(t *testing.T) {
	p := DefaultPricing()
	for seats := 1; seats <= 50; seats++ {
		got := p.Price(seats)
		if got < p.MinimumCharge {
			t.Fatalf("Price(%d) = %d, below minimum charge %d", seats, got, p.MinimumCharge)
		}
		want := int64(seats) * p.PricePerSeat
		if want < p.MinimumCharge {
			want = p.MinimumCharge
		}
		if got != want {
			t.Fatalf("Price(%d) = %d, want %d", seats, got, want)
		}
	}
}

func TestPriceIsPure(t *testing.T) {
	p := PricingPolicy{PricePerSeat: 200, MinimumCharge: 1000}
	first := p.Price(7)
	second := p.Price(7)
	if first != second {
		t.Fatalf("Price(7) not idempotent: %d then %d", first, second)
	}
}
