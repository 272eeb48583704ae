package chapter

import (
	"strconv"
	"strings"
)

// Resolve turns a Match into a chapter number. The second return value is
// false when the integer part cannot be parsed.
//
// The result is built as a decimal literal ("24" + "." + "005") and parsed
// once, so it is the float64 closest to the written chapter number.
func Resolve(m Match) (float64, bool) {
	if _, err := strconv.ParseUint(m.IntegerPart, 10, 64); err != nil {
		return Unrecognized, false
	}

	literal := m.IntegerPart
	if frac := fractionDigits(m.Subchapter); frac != "" {
		literal += "." + frac
	}

	number, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return Unrecognized, false
	}
	return number, true
}

// fractionDigits maps a sub-chapter token to the digits that follow the
// decimal point. An empty result adds nothing.
func fractionDigits(token string) string {
	switch {
	case token == "":
		return ""
	case strings.Contains(token, "extra"):
		return extraFraction
	case strings.Contains(token, "omake"):
		return omakeFraction
	case strings.Contains(token, "special"):
		return specialFraction
	case isDigits(token):
		return token
	}

	// Letters a..h count as .1 to .8; anything else is ignored.
	switch c := token[0]; {
	case c >= 'a' && c <= 'h':
		return string(rune('1' + c - 'a'))
	case c >= 'A' && c <= 'H':
		return string(rune('1' + c - 'A'))
	}
	return ""
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
