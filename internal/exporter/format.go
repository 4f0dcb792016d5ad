package exporter

import (
	"strconv"
)

// formatFloat formats a float64 with the shortest decimal representation
// that parses back to the same value, so data exports round-trip exactly.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatFixed formats a float64 with exactly two decimal places. Used for
// derived statistics where a stable column width reads better than an
// exact mantissa.
func formatFixed(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// formatInt formats an int value for CSV output
func formatInt(i int) string {
	return strconv.Itoa(i)
}
