package helpers

import (
	"fmt"
	"math"
	"strings"
)

// FormatBRL renders a monetary value the Brazilian way: "R$ 1.234,56".
// Negative values keep the sign in front of the currency symbol.
func FormatBRL(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	cents := int64(math.Round(value * 100))
	whole := cents / 100
	fraction := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return fmt.Sprintf("%sR$ %s,%02d", sign, strings.Join(groups, "."), fraction)
}

// FormatPercent renders a percentage with one decimal place, e.g. "10.6%"
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
