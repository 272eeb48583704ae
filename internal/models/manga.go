// This file defines the core data structures (models) for our application.
// These structs represent the series and chapters in our library.

package models

import "time"

// Series represents a single manga series, backed by a top-level folder of
// the library.
type Series struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	Path              string     `json:"path"`
	ChapterCount      int        `json:"chapter_count"`
	UnrecognizedCount int        `json:"unrecognized_count"`
	Chapters          []*Chapter `json:"chapters,omitempty"` // omitempty hides it when not loaded
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Chapter represents a single chapter archive. Number holds the recognised
// chapter number, or -1 when none could be recognised from Title.
type Chapter struct {
	ID        int64     `json:"id"`
	SeriesID  int64     `json:"series_id"`
	Path      string    `json:"path"`
	Title     string    `json:"title"`
	Number    float64   `json:"number"`
	PageCount int       `json:"page_count"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Recognized reports whether a chapter number was found for the chapter.
func (c *Chapter) Recognized() bool {
	return c.Number >= 0
}
