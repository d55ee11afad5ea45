package pricing

import (
	"math"
	"strconv"
	"strings"
)

// ClampFloat returns max(min, v), or fallback when v is NaN or infinite.
func ClampFloat(v, min, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return math.Max(min, v)
}

func ClampInt(v, min int) int {
	return max(min, v)
}

// ParseNumber reads user-entered text. Blank or unparseable input yields
// fallback; anything else is clamped like ClampFloat.
func ParseNumber(s string, min, fallback float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return ClampFloat(v, min, fallback)
}

const maxCount = math.MaxInt32

// ParseCount reads a whole-number count. The value is parsed like
// ParseNumber, rounded to the nearest integer and capped at MaxInt32.
func ParseCount(s string, min, fallback int) int {
	v := ParseNumber(s, float64(min), float64(fallback))
	return int(math.Min(math.Round(v), maxCount))
}
