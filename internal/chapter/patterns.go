// Pattern and table definitions used by the chapter number parser.
// All regular expressions are compiled once and never mutated, so they are
// safe to share between goroutines.

package chapter

import (
	"regexp"
	"strings"
)

// noisePatterns match version, volume and season markers. A match is only
// deleted when it sits on a frontier, see atFrontier.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[vs][^\p{L}]?[0-9]+`),
	regexp.MustCompile(`(?i)ver[^\p{L}]?[0-9]+`),
	regexp.MustCompile(`(?i)vol[^\p{L}]?[0-9]+`),
	regexp.MustCompile(`(?i)version[^\p{L}]?[0-9]+`),
	regexp.MustCompile(`(?i)volume[^\p{L}]?[0-9]+`),
	regexp.MustCompile(`(?i)season[^\p{L}]?[0-9]+`),
}

// suffixRewrites join a detached suffix keyword to the chapter number so the
// extractor picks it up as the sub-chapter token.
var suffixRewrites = strings.NewReplacer(
	" special", ".special",
	" omake", ".omake",
	" extra", ".extra",
)

// Pattern names reported in a Recognition.
const (
	PatternChPrefixed = "ch-prefixed"
	PatternBareNumber = "bare-number"
)

type extractionPattern struct {
	name string
	re   *regexp.Regexp
}

// extractionPatterns are tried in order; the first one that matches anywhere wins.
var extractionPatterns = []extractionPattern{
	{name: PatternChPrefixed, re: regexp.MustCompile(`(?i)ch\.\s*([0-9]+)\.?([a-z0-9]*)`)},
	{name: PatternBareNumber, re: regexp.MustCompile(`(?i)([0-9]+)\.?([a-z0-9]*)`)},
}

// Fractions used for keyword sub-chapters, as decimal digits after the point.
const (
	extraFraction   = "99"
	omakeFraction   = "98"
	specialFraction = "97"
)
