package util

import (
	"cmp"
	"regexp"
	"strings"
)

var tokenizer = regexp.MustCompile(`(\d+|\D+)`)

type naturalSortToken struct {
	str   string
	isNum bool
}

func tokenize(s string) []naturalSortToken {
	parts := tokenizer.FindAllString(s, -1)
	tokens := make([]naturalSortToken, len(parts))
	for i, p := range parts {
		if p[0] >= '0' && p[0] <= '9' {
			tokens[i] = naturalSortToken{str: strings.TrimLeft(p, "0"), isNum: true}
		} else {
			tokens[i] = naturalSortToken{str: strings.ToLower(p)}
		}
	}
	return tokens
}

// compareDigits compares two digit strings without leading zeros by value.
func compareDigits(a, b string) int {
	if len(a) != len(b) {
		return cmp.Compare(len(a), len(b))
	}
	return strings.Compare(a, b)
}

// NaturalCompare compares two strings in natural order: digit runs compare
// by value, everything else case-insensitively. It returns -1, 0 or 1.
func NaturalCompare(s1, s2 string) int {
	t1 := tokenize(s1)
	t2 := tokenize(s2)

	for i := 0; i < min(len(t1), len(t2)); i++ {
		// If one is a number and the other isn't, the number comes first.
		if t1[i].isNum != t2[i].isNum {
			if t1[i].isNum {
				return -1
			}
			return 1
		}

		var c int
		if t1[i].isNum {
			c = compareDigits(t1[i].str, t2[i].str)
		} else {
			c = strings.Compare(t1[i].str, t2[i].str)
		}
		if c != 0 {
			return c
		}
	}

	// If all tokens so far are equal, the shorter string comes first.
	return cmp.Compare(len(t1), len(t2))
}

// NaturalSortLess reports whether s1 sorts before s2 in natural order.
func NaturalSortLess(s1, s2 string) bool {
	return NaturalCompare(s1, s2) < 0
}
