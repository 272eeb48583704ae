package chapter

import (
	"strings"
	"testing"
)

// FuzzParseNumber verifies that ParseNumber never panics and only returns
// the sentinel or a non-negative number.
func FuzzParseNumber(f *testing.F) {
	f.Add("Mokushiroku Alice", "Mokushiroku Alice Vol.1 Ch. 4: Misrepresentation")
	f.Add("Bleach", "Bleach 567.a Down With Snowwhite")
	f.Add("Onepunch-Man", "Onepunch-Man Punch Ver002 028")
	f.Add("Solo Leveling", "Solo Leveling, 024-005")
	f.Add("random", "Foo")
	f.Add("", "")
	f.Add("", "\xff\xfe v1")
	f.Add("a", "ѐv1 ß2")

	f.Fuzz(func(t *testing.T, series, text string) {
		got := ParseNumber(series, text)
		if got != Unrecognized && got < 0 {
			t.Errorf("ParseNumber(%q, %q) = %v, want -1 or a non-negative number", series, text, got)
		}
		if got != ParseNumber(series, text) {
			t.Errorf("ParseNumber(%q, %q) is not deterministic", series, text)
		}
	})
}

// FuzzNoDigits verifies that text without any digit is never recognised.
func FuzzNoDigits(f *testing.F) {
	f.Add("Foo")
	f.Add("Chapter Extra")
	f.Add("ch. special")

	f.Fuzz(func(t *testing.T, text string) {
		if strings.ContainsAny(text, "0123456789") {
			return
		}
		if got := ParseNumber("", text); got != Unrecognized {
			t.Errorf("ParseNumber(%q) = %v, want %v", text, got, Unrecognized)
		}
	})
}
