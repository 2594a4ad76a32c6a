package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarginPct(t *testing.T) {
	cases := []struct {
		name    string
		revenue float64
		profit  float64
		want    float64
	}{
		{"normal margin", 1000, 250, 25},
		{"negative profit", 1000, -100, -10},
		{"zero revenue", 0, 500, 0},
		{"negative revenue", -50, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, MarginPct(tc.revenue, tc.profit), 1e-9)
		})
	}
}

func TestMarginPctOrNil(t *testing.T) {
	revenue := 400.0
	profit := 100.0
	zero := 0.0

	got := MarginPctOrNil(&revenue, &profit)
	if got == nil {
		t.Fatalf("expected margin, got nil")
	}
	assert.InDelta(t, 25.0, *got, 1e-9)

	if m := MarginPctOrNil(nil, &profit); m != nil {
		t.Fatalf("nil revenue should yield nil margin, got %v", *m)
	}
	if m := MarginPctOrNil(&zero, &profit); m != nil {
		t.Fatalf("zero revenue should yield nil margin, got %v", *m)
	}

	// missing profit counts as 0, not as missing
	got = MarginPctOrNil(&revenue, nil)
	if got == nil {
		t.Fatalf("expected margin with nil profit, got nil")
	}
	assert.InDelta(t, 0.0, *got, 1e-9)
}

func TestRatePerMile(t *testing.T) {
	assert.InDelta(t, 2.5, RatePerMile(1000, 400), 1e-9)
	assert.InDelta(t, 0.0, RatePerMile(1000, 0), 1e-9)
	assert.InDelta(t, 0.0, RatePerMile(0, 400), 1e-9)
}
