package utils

import (
	"fmt"
	"strings"
)

// FormatPrice formats a room or menu price for display with Indian
// digit grouping: the last three digits form one group and the rest
// pair off, e.g. 4500 -> "₹4,500" and 4500000 -> "₹45,00,000".
// Whole-rupee amounts drop the paise.
func FormatPrice(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	var groups []string
	if len(integerPart) > 3 {
		groups = append(groups, integerPart[len(integerPart)-3:])
		rest := integerPart[:len(integerPart)-3]
		for i := len(rest); i > 0; i -= 2 {
			start := i - 2
			if start < 0 {
				start = 0
			}
			groups = append([]string{rest[start:i]}, groups...)
		}
	} else {
		groups = []string{integerPart}
	}

	out := "₹" + strings.Join(groups, ",")
	if decimalPart != "00" {
		out += "." + decimalPart
	}
	return out
}
