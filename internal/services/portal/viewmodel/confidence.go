package viewmodel

import "math"

// Tier buckets a confidence score.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

const (
	highConfidence   = 0.9
	mediumConfidence = 0.7
)

var tierColors = map[Tier]ColorToken{
	TierHigh:   ColorGreen,
	TierMedium: ColorYellow,
	TierLow:    ColorRed,
}

// ConfidenceTierOf buckets score using inclusive lower bounds of 0.9 and 0.7.
// NaN is low.
func ConfidenceTierOf(score float64) Tier {
	switch {
	case math.IsNaN(score):
		return TierLow
	case score >= highConfidence:
		return TierHigh
	case score >= mediumConfidence:
		return TierMedium
	default:
		return TierLow
	}
}

// Color returns the chip color for the tier.
func (t Tier) Color() ColorToken {
	if color, ok := tierColors[t]; ok {
		return color
	}
	return FallbackColor
}

// EntityDisplay is a recognised entity ready for display.
type EntityDisplay struct {
	Label string
	Color ColorToken
	Tier  Tier
	// Percent is the score as a whole percentage in [0,100].
	Percent int
}

// EntityDisplayFor pairs label with the tier and color of score.
func EntityDisplayFor(label string, score float64) EntityDisplay {
	tier := ConfidenceTierOf(score)
	percent := 0
	if !math.IsNaN(score) {
		percent = int(math.Max(0, math.Min(100, math.Round(score*100))))
	}
	return EntityDisplay{
		Label:   label,
		Color:   tier.Color(),
		Tier:    tier,
		Percent: percent,
	}
}
