package countries

import "math/rand/v2"

// Multiplier range for the GDP estimate, matching random.uniform(1000, 2000).
const (
	multiplierMin = 1000.0
	multiplierMax = 2000.0
)

// MultiplierSource yields the per-record GDP multiplier. It is an explicit
// dependency rather than ambient randomness so tests can pin the value and
// make refresh output reproducible.
type MultiplierSource interface {
	Multiplier() float64
}

// RandomMultiplier draws uniformly from [1000, 2000) for every record.
type RandomMultiplier struct{}

func (RandomMultiplier) Multiplier() float64 {
	return multiplierMin + rand.Float64()*(multiplierMax-multiplierMin)
}

// FixedMultiplier always returns the same value. Test helper.
type FixedMultiplier float64

func (f FixedMultiplier) Multiplier() float64 { return float64(f) }

// EstimateGDP computes population * multiplier / rate. A nil, zero, or
// negative rate fails closed: the estimate is nil, never a numeric fault.
func EstimateGDP(population int64, multiplier float64, rate *float64) *float64 {
	if rate == nil || *rate <= 0 {
		return nil
	}
	gdp := float64(population) * multiplier / *rate
	return &gdp
}
