// Package money formats plain-number amounts for display.
//
// The computation core works on money as float64 and never formats; keeping
// formatting here lets the currency be swapped without touching any pricing
// logic.
package money

import (
	"fmt"
	"strings"
)

// Formatter renders an amount for display.
type Formatter interface {
	Format(amount float64) string
}

// ARSFormatter formats amounts the es-AR way: "$ 1.234,56".
type ARSFormatter struct{}

// Format implements Formatter.
func (ARSFormatter) Format(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	intPart := s[:len(s)-3]
	decPart := s[len(s)-2:]

	// Miles con punto, decimales con coma
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$ %s,%s", sign, b.String(), decPart)
}
