package domain

// MarginPct is profit over revenue as a percentage. Aggregate endpoints
// treat non-positive revenue as a 0 margin.
func MarginPct(revenue, profit float64) float64 {
	if revenue > 0 {
		return profit / revenue * 100
	}
	return 0
}

// MarginPctOrNil is the per-trip variant: missing or non-positive revenue
// yields no margin at all rather than 0.
func MarginPctOrNil(revenue, profit *float64) *float64 {
	if revenue == nil || *revenue <= 0 {
		return nil
	}
	p := 0.0
	if profit != nil {
		p = *profit
	}
	m := p / *revenue * 100
	return &m
}

// RatePerMile computes fleet-wide RPM/CPM from a money total and a mile
// total. Zero miles yields 0.
func RatePerMile(total float64, miles int64) float64 {
	if miles <= 0 {
		return 0
	}
	return total / float64(miles)
}
