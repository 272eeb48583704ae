package chapter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// separatorReplacer unifies comma and hyphen separators to dots.
var separatorReplacer = strings.NewReplacer(",", ".", "-", ".")

// Normalize prepares a chapter title for extraction. The series title is
// removed from the lowercased text, separators become dots, version, volume
// and season markers are stripped and detached suffix keywords are joined to
// the preceding number.
func Normalize(seriesTitle, chapterText string) string {
	name := strings.ToLower(chapterText)

	name = strings.Replace(name, strings.ToLower(seriesTitle), "", 1)
	name = strings.TrimSpace(name)

	name = separatorReplacer.Replace(name)

	for _, re := range noisePatterns {
		name = strings.TrimSpace(deleteAtFrontier(re, name))
	}

	return suffixRewrites.Replace(name)
}

// deleteAtFrontier removes every non-overlapping match of re that starts on a
// frontier. A match rejected by the frontier check does not consume its text:
// the search resumes one rune after the rejected start.
func deleteAtFrontier(re *regexp.Regexp, text string) string {
	var b strings.Builder
	copied, from := 0, 0
	for from < len(text) {
		loc := re.FindStringIndex(text[from:])
		if loc == nil {
			break
		}
		start, end := from+loc[0], from+loc[1]
		if !atFrontier(text, start) || end == start {
			_, size := utf8.DecodeRuneInString(text[start:])
			from = start + max(size, 1)
			continue
		}
		b.WriteString(text[copied:start])
		copied, from = end, end
	}
	if copied == 0 {
		return text
	}
	b.WriteString(text[copied:])
	return b.String()
}

// atFrontier reports whether the rune before offset i is not a letter. The
// start of the text counts as a frontier.
func atFrontier(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !unicode.IsLetter(r)
}
