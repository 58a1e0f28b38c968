package param

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DecibelFormatter formats dB values with an explicit sign for gains above unity.
func DecibelFormatter(db float64) string {
	if math.IsInf(db, -1) {
		return "-∞ dB"
	}
	// Avoid "-0.0 dB" for tiny negative values
	if math.Abs(db) < 0.05 {
		return "0.0 dB"
	}
	if db > 0 {
		return fmt.Sprintf("+%.1f dB", db)
	}
	return fmt.Sprintf("%.1f dB", db)
}

// DecibelParser parses dB strings such as "+3", "-6 dB" or "0db".
func DecibelParser(str string) (float64, error) {
	str = strings.TrimSpace(str)
	if strings.Contains(str, "∞") || strings.Contains(strings.ToLower(str), "inf") {
		return math.Inf(-1), nil
	}
	lower := strings.ToLower(str)
	if strings.HasSuffix(lower, "db") {
		str = str[:len(str)-2]
	}
	str = strings.TrimPrefix(strings.TrimSpace(str), "+")
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}

// SignedLabel formats a scale label: "+" for positive values, "0" for zero,
// a plain minus for negative. Whole numbers print without decimals.
func SignedLabel(v float64) string {
	// Snap to one decimal so lerp noise never shows as "-0" or "9.9999"
	v = math.Round(v*10) / 10
	if v == 0 {
		return "0"
	}

	var text string
	if v == math.Trunc(v) {
		text = strconv.FormatFloat(v, 'f', 0, 64)
	} else {
		text = strconv.FormatFloat(v, 'f', 1, 64)
	}
	if v > 0 {
		return "+" + text
	}
	return text
}
