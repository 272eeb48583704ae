package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/vrsandeep/mango-chapters/internal/models"
	"github.com/vrsandeep/mango-chapters/internal/util"
)

// ChapterInfo is the minimal chapter view used while syncing the library.
type ChapterInfo struct {
	ID        int64
	SeriesID  int64
	Path      string
	Title     string
	Number    float64
	PageCount int
}

// ReparseItem pairs a stored chapter with the title of its series.
type ReparseItem struct {
	ChapterID   int64
	SeriesTitle string
	Title       string
	Number      float64
}

const chapterColumns = "SELECT id, series_id, path, title, number, page_count, created_at, updated_at FROM chapters"

func scanChapter(row rowScanner) (*models.Chapter, error) {
	var chapter models.Chapter
	err := row.Scan(
		&chapter.ID, &chapter.SeriesID, &chapter.Path, &chapter.Title,
		&chapter.Number, &chapter.PageCount, &chapter.CreatedAt, &chapter.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (s *Store) queryChapters(query string, args ...any) ([]*models.Chapter, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chapters := []*models.Chapter{}
	for rows.Next() {
		chapter, err := scanChapter(rows)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, chapter)
	}
	return chapters, rows.Err()
}

// UpsertChapter inserts a chapter or updates the stored one at the same path.
func (s *Store) UpsertChapter(seriesID int64, path, title string, number float64, pageCount int) (*models.Chapter, error) {
	now := time.Now()
	_, err := s.db.Exec(`
		INSERT INTO chapters (series_id, path, title, number, page_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			series_id = excluded.series_id,
			title = excluded.title,
			number = excluded.number,
			page_count = excluded.page_count,
			updated_at = excluded.updated_at`,
		seriesID, path, title, number, pageCount, now, now)
	if err != nil {
		return nil, err
	}
	return scanChapter(s.db.QueryRow(chapterColumns+" WHERE path = ?", path))
}

// GetChapterByID fetches a single chapter by its ID.
func (s *Store) GetChapterByID(id int64) (*models.Chapter, error) {
	chapter, err := scanChapter(s.db.QueryRow(chapterColumns+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrChapterNotFound
	}
	return chapter, err
}

// ListChaptersBySeries returns the chapters of a series in reading order.
func (s *Store) ListChaptersBySeries(seriesID int64) ([]*models.Chapter, error) {
	chapters, err := s.queryChapters(chapterColumns+" WHERE series_id = ?", seriesID)
	if err != nil {
		return nil, err
	}
	util.SortChapters(chapters)
	return chapters, nil
}

// ListUnrecognizedChapters returns chapters whose number could not be recognised.
func (s *Store) ListUnrecognizedChapters() ([]*models.Chapter, error) {
	return s.queryChapters(chapterColumns + " WHERE number < 0 ORDER BY path")
}

// GetAllChaptersByPath retrieves all chapters and maps them by their path.
func (s *Store) GetAllChaptersByPath() (map[string]ChapterInfo, error) {
	rows, err := s.db.Query("SELECT id, series_id, path, title, number, page_count FROM chapters")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chapterMap := make(map[string]ChapterInfo)
	for rows.Next() {
		var info ChapterInfo
		if err := rows.Scan(&info.ID, &info.SeriesID, &info.Path, &info.Title, &info.Number, &info.PageCount); err != nil {
			return nil, err
		}
		chapterMap[info.Path] = info
	}
	return chapterMap, rows.Err()
}

// ListChaptersForReparse returns every chapter with the title of its series.
func (s *Store) ListChaptersForReparse() ([]ReparseItem, error) {
	rows, err := s.db.Query(`
		SELECT c.id, s.title, c.title, c.number
		FROM chapters c
		JOIN series s ON c.series_id = s.id
		ORDER BY c.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ReparseItem
	for rows.Next() {
		var item ReparseItem
		if err := rows.Scan(&item.ChapterID, &item.SeriesTitle, &item.Title, &item.Number); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateChapterNumber stores a newly recognised number for a chapter.
func (s *Store) UpdateChapterNumber(id int64, number float64) error {
	res, err := s.db.Exec("UPDATE chapters SET number = ?, updated_at = ? WHERE id = ?", number, time.Now(), id)
	if err != nil {
		return err
	}
	return checkAffected(res, ErrChapterNotFound)
}

// DeleteChapterByPath removes the chapter stored for an archive path.
func (s *Store) DeleteChapterByPath(path string) error {
	res, err := s.db.Exec("DELETE FROM chapters WHERE path = ?", path)
	if err != nil {
		return err
	}
	return checkAffected(res, ErrChapterNotFound)
}
