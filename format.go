package prim

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber renders v in invariant form: '.' decimal point, no
// grouping, the shortest digits that round-trip, and never an exponent.
// Infinities are spelled so that strconv.ParseFloat reads them back.
func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// joinNumbers formats vs separated by ", ".
func joinNumbers(vs ...float64) string {
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatNumber(v))
	}
	return b.String()
}
