package param

import (
	"fmt"
	"strconv"
	"strings"
)

// Common parameter formatters and parsers. Formatters emit the bare
// number; the unit lives in the parameter's Unit label.

// TimeFormatter formats a millisecond value
func TimeFormatter(ms float64) string {
	return fmt.Sprintf("%.1f", ms)
}

// TimeParser parses time strings, accepting an optional ms or s suffix
func TimeParser(str string) (float64, error) {
	str = strings.TrimSpace(str)

	if strings.HasSuffix(str, "ms") {
		return strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(str, "ms")), 64)
	}

	if strings.HasSuffix(str, "s") {
		val, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(str, "s")), 64)
		if err != nil {
			return 0, err
		}
		return val * 1000, nil
	}

	return strconv.ParseFloat(str, 64)
}

// PercentFormatter formats a percentage value
func PercentFormatter(value float64) string {
	return fmt.Sprintf("%.0f", value)
}

// PercentParser parses percentage strings, accepting an optional % suffix
func PercentParser(str string) (float64, error) {
	str = strings.TrimSuffix(strings.TrimSpace(str), "%")
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}
