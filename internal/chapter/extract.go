package chapter

// Match holds the groups captured by an extraction pattern.
type Match struct {
	// IntegerPart is a non-empty digit string.
	IntegerPart string `json:"integer_part"`
	// Subchapter is the alphanumeric token following the integer part, possibly empty.
	Subchapter string `json:"subchapter"`
	// Pattern names the extraction pattern that produced the match.
	Pattern string `json:"pattern"`
}

// Extract finds the chapter number groups in normalized text. The
// "ch."-prefixed pattern has priority; the bare number pattern is only tried
// when the first one matches nowhere. Only the leftmost match is used.
func Extract(normalized string) (Match, bool) {
	for _, p := range extractionPatterns {
		groups := p.re.FindStringSubmatch(normalized)
		if groups == nil {
			continue
		}
		return Match{IntegerPart: groups[1], Subchapter: groups[2], Pattern: p.name}, true
	}
	return Match{}, false
}
