// Package checkout validates the customer form, formats its fields the way
// the storefront masks them, and composes the WhatsApp order message.
package checkout

import "strings"

// DigitsOnly strips everything that is not an ASCII digit.
func DigitsOnly(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCPF masks digits as ###.###.###-##, truncating to 11 digits first.
// Partial input gets a partial mask, matching what the form shows while the
// customer is still typing.
func FormatCPF(v string) string {
	d := DigitsOnly(v)
	if len(d) > 11 {
		d = d[:11]
	}
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "." + d[3:]
	case len(d) <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

// FormatPhone masks digits as (##) ####-#### for landlines and
// (##) #####-#### once an eleventh digit shows up.
func FormatPhone(v string) string {
	d := DigitsOnly(v)
	if len(d) > 11 {
		d = d[:11]
	}
	if len(d) <= 10 {
		switch {
		case len(d) <= 2:
			return d
		case len(d) <= 6:
			return "(" + d[:2] + ") " + d[2:]
		default:
			return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
		}
	}
	return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
}

// FormatCEP masks digits as #####-###, truncating to 8 digits.
func FormatCEP(v string) string {
	d := DigitsOnly(v)
	if len(d) > 8 {
		d = d[:8]
	}
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// FormatState uppercases the value and keeps at most two characters.
func FormatState(v string) string {
	runes := []rune(strings.ToUpper(v))
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return string(runes)
}
