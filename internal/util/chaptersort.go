package util

import (
	"cmp"
	"slices"

	"github.com/vrsandeep/mango-chapters/internal/chapter"
	"github.com/vrsandeep/mango-chapters/internal/models"
)

// CompareChapters orders chapters by recognised number. Chapters without a
// number go after numbered ones; ties fall back to natural title order.
func CompareChapters(a, b *models.Chapter) int {
	return CompareNumbered(a.Number, a.Title, b.Number, b.Title)
}

// CompareNumbered compares two chapters given as number and title.
func CompareNumbered(aNum float64, aTitle string, bNum float64, bTitle string) int {
	aOk, bOk := aNum >= 0, bNum >= 0
	switch {
	case aOk && !bOk:
		return -1
	case !aOk && bOk:
		return 1
	case aOk && bOk:
		if c := cmp.Compare(aNum, bNum); c != 0 {
			return c
		}
	}
	return NaturalCompare(aTitle, bTitle)
}

// SortChapters sorts chapters in place, see CompareChapters.
func SortChapters(chapters []*models.Chapter) {
	slices.SortStableFunc(chapters, CompareChapters)
}

// SortChapterResults sorts provider chapters in reading order.
func SortChapterResults(results []models.ChapterResult) {
	slices.SortStableFunc(results, func(a, b models.ChapterResult) int {
		return CompareNumbered(a.Number, a.Title, b.Number, b.Title)
	})
}

// SortChapterTitles returns the titles of a series in reading order. Each
// title is run through chapter.ParseNumber with seriesTitle as context.
func SortChapterTitles(seriesTitle string, titles []string) []string {
	chapters := make([]*models.Chapter, len(titles))
	for i, title := range titles {
		chapters[i] = &models.Chapter{Title: title, Number: chapter.ParseNumber(seriesTitle, title)}
	}
	SortChapters(chapters)

	sorted := make([]string, len(chapters))
	for i, c := range chapters {
		sorted[i] = c.Title
	}
	return sorted
}
