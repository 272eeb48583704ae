package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vrsandeep/mango-chapters/internal/models"
)

func TestSortChapterTitles(t *testing.T) {
	expected := []string{
		"Bleach 1",
		"Bleach 2",
		"Bleach 2.a",
		"Bleach 2.5",
		"Bleach 2 extra",
		"Bleach Vol.1 Ch.10",
		"Bleach 100",
		"Bleach Oneshot",
		"Bleach Prologue",
	}

	received := []string{
		"Bleach Prologue",
		"Bleach 100",
		"Bleach 2 extra",
		"Bleach Vol.1 Ch.10",
		"Bleach 2.5",
		"Bleach Oneshot",
		"Bleach 1",
		"Bleach 2.a",
		"Bleach 2",
	}

	assert.Equal(t, expected, SortChapterTitles("Bleach", received))
}

func TestSortChapterTitles_TiesUseNaturalOrder(t *testing.T) {
	got := SortChapterTitles("", []string{"Ch.3 (v2)", "Ch.3", "Ch.3 (raw)"})
	assert.Equal(t, []string{"Ch.3", "Ch.3 (raw)", "Ch.3 (v2)"}, got)
}

func TestCompareChapters(t *testing.T) {
	one := &models.Chapter{Title: "1", Number: 1}
	two := &models.Chapter{Title: "2", Number: 2}
	none := &models.Chapter{Title: "Oneshot", Number: -1}

	assert.Equal(t, -1, CompareChapters(one, two))
	assert.Equal(t, 1, CompareChapters(two, one))
	assert.Equal(t, -1, CompareChapters(two, none))
	assert.Equal(t, 1, CompareChapters(none, one))
	assert.Equal(t, 0, CompareChapters(one, one))
}

func TestSortChapterResults(t *testing.T) {
	results := []models.ChapterResult{
		{Identifier: "c", Title: "Ch. 10", Number: 10},
		{Identifier: "x", Title: "Announcement", Number: -1},
		{Identifier: "a", Title: "Ch. 1", Number: 1},
		{Identifier: "b", Title: "Ch. 1.5", Number: 1.5},
	}
	SortChapterResults(results)

	var ids []string
	for _, r := range results {
		ids = append(ids, r.Identifier)
	}
	assert.Equal(t, []string{"a", "b", "c", "x"}, ids)
}
