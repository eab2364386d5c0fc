package viewmodel

import "math"

// ProgressInfo describes how far a batch has advanced.
type ProgressInfo struct {
	Processed int
	Total     int
	// Percent is always within [0,100].
	Percent int
}

// Complete reports whether every unit has been processed.
func (p ProgressInfo) Complete() bool {
	return p.Total > 0 && p.Processed >= p.Total
}

// ProgressOf computes the rounded completion percentage. Negative inputs
// are treated as zero and a zero total yields 0%.
func ProgressOf(processed, total int) ProgressInfo {
	processed = max(processed, 0)
	total = max(total, 0)
	info := ProgressInfo{Processed: processed, Total: total}
	if total == 0 {
		return info
	}
	percent := math.Round(float64(processed) / float64(total) * 100)
	info.Percent = clampInt(int(percent), 0, 100)
	return info
}

func clampInt(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
