// Package chapter recognises chapter numbers in free-form manga chapter
// titles such as "Bleach 567.a Down With Snowwhite" or "Vol.1 Ch. 4: Title".
//
// Recognition is a linear pipeline: Normalize, Extract, Resolve. Every
// function in the package is pure and safe for concurrent use.
package chapter

// Unrecognized is returned by ParseNumber when no chapter number is found.
const Unrecognized = -1.0

// Recognition describes how a chapter number was derived from a title.
type Recognition struct {
	Number     float64 `json:"number"`
	Recognized bool    `json:"recognized"`
	Normalized string  `json:"normalized"`
	Match      *Match  `json:"match,omitempty"`
}

// Recognize runs the full pipeline and keeps the intermediate results.
func Recognize(seriesTitle, chapterText string) Recognition {
	rec := Recognition{
		Number:     Unrecognized,
		Normalized: Normalize(seriesTitle, chapterText),
	}

	m, ok := Extract(rec.Normalized)
	if !ok {
		return rec
	}
	rec.Match = &m

	number, ok := Resolve(m)
	if !ok {
		return rec
	}
	rec.Number = number
	rec.Recognized = true
	return rec
}

// ParseNumber returns the chapter number found in chapterText, using
// seriesTitle to drop the series name first. It returns Unrecognized (-1)
// when nothing can be extracted.
func ParseNumber(seriesTitle, chapterText string) float64 {
	return Recognize(seriesTitle, chapterText).Number
}
