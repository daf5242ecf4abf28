// Package pricing renders centavo amounts for display.
package pricing

import "fmt"

// FormatPrice renders an amount in minor units (centavos) as a Brazilian
// Real display string, e.g. 14990 -> "R$ 149,90". Integer math only, so
// there is no float rounding to get wrong.
func FormatPrice(minorUnits int64) string {
	sign := ""
	if minorUnits < 0 {
		sign = "-"
		minorUnits = -minorUnits
	}
	return fmt.Sprintf("R$ %s%d,%02d", sign, minorUnits/100, minorUnits%100)
}
