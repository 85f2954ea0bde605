package booking

// PricingPolicy holds the two pricing constants. It is plain
// configuration handed to the processor at construction time and is
// never persisted.
type PricingPolicy struct {
	PricePerSeat  int64 // price per seat in rand
	MinimumCharge int64 // floor applied to the seat total
}

// DefaultPricing returns the policy the cruise operator has run with
// since launch: R200 per seat with a R1000 minimum charge.
func DefaultPricing() PricingPolicy {
	return PricingPolicy{PricePerSeat: 200, MinimumCharge: 1000}
}

// Price computes the total cost for a seat count. The seat total is
// floored at the minimum charge, so the result is never below it and
// grows strictly with seats once the total clears the floor. Pure
// function; defined for every seats >= 1.
func (p PricingPolicy) Price(seats int) int64 {
	total := int64(seats) * p.PricePerSeat
	if total < p.MinimumCharge {
		return p.MinimumCharge
	}
	return total
}
