package viewmodel

import (
	"math"
	"testing"
)

func TestConfidenceTierOf(t *testing.T) {
	tests := []struct {
		score float64
		want  Tier
	}{
		{0.95, TierHigh},
		{0.9, TierHigh},
		{0.8999, TierMedium},
		{0.75, TierMedium},
		{0.7, TierMedium},
		{0.6999, TierLow},
		{0.5, TierLow},
		{0, TierLow},
		{-1, TierLow},
		{1.5, TierHigh},
		{math.NaN(), TierLow},
	}
	for _, tc := range tests {
		if got := ConfidenceTierOf(tc.score); got != tc.want {
			t.Fatalf("ConfidenceTierOf(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestEntityDisplayFor(t *testing.T) {
	got := EntityDisplayFor("Nelson Mandela", 0.93)
	if got.Label != "Nelson Mandela" || got.Tier != TierHigh || got.Color != ColorGreen || got.Percent != 93 {
		t.Fatalf("EntityDisplayFor high = %+v", got)
	}
	if got := EntityDisplayFor("Cape Town", 0.72); got.Color != ColorYellow {
		t.Fatalf("medium color = %q, want %q", got.Color, ColorYellow)
	}
	if got := EntityDisplayFor("1820", 0.2); got.Color != ColorRed {
		t.Fatalf("low color = %q, want %q", got.Color, ColorRed)
	}
	if got := EntityDisplayFor("x", math.Inf(1)); got.Percent != 100 {
		t.Fatalf("infinite score percent = %d, want 100", got.Percent)
	}
	if got := EntityDisplayFor("x", math.NaN()); got.Percent != 0 || got.Tier != TierLow {
		t.Fatalf("NaN score = %+v, want low tier at 0%%", got)
	}
}

func TestTierColorFallback(t *testing.T) {
	if got := Tier("unknown").Color(); got != FallbackColor {
		t.Fatalf("unknown tier color = %q, want %q", got, FallbackColor)
	}
}
