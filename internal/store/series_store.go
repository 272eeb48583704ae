package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vrsandeep/mango-chapters/internal/models"
)

// seriesColumns selects a series row together with its chapter counts.
const seriesColumns = `
	SELECT s.id, s.title, s.path, s.created_at, s.updated_at,
	       COUNT(c.id) AS chapter_count,
	       COALESCE(SUM(CASE WHEN c.number < 0 THEN 1 ELSE 0 END), 0) AS unrecognized_count
	FROM series s
	LEFT JOIN chapters c ON c.series_id = s.id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeries(row rowScanner) (*models.Series, error) {
	var series models.Series
	err := row.Scan(
		&series.ID, &series.Title, &series.Path, &series.CreatedAt, &series.UpdatedAt,
		&series.ChapterCount, &series.UnrecognizedCount,
	)
	if err != nil {
		return nil, err
	}
	return &series, nil
}

// GetOrCreateSeries finds a series by its folder path or creates it if it
// doesn't exist. The title is refreshed when the folder was renamed in place.
func (s *Store) GetOrCreateSeries(title, path string) (*models.Series, error) {
	now := time.Now()
	_, err := s.db.Exec(`
		INSERT INTO series (title, path, created_at, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET title = excluded.title`,
		title, path, now, now)
	if err != nil {
		return nil, fmt.Errorf("upsert series %s: %w", path, err)
	}
	return scanSeries(s.db.QueryRow(seriesColumns+" WHERE s.path = ? GROUP BY s.id", path))
}

// GetSeriesByID fetches a single series by its ID.
func (s *Store) GetSeriesByID(id int64) (*models.Series, error) {
	series, err := scanSeries(s.db.QueryRow(seriesColumns+" WHERE s.id = ? GROUP BY s.id", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSeriesNotFound
	}
	return series, err
}

// ListSeries returns every series ordered by title.
func (s *Store) ListSeries() ([]*models.Series, error) {
	rows, err := s.db.Query(seriesColumns + " GROUP BY s.id ORDER BY s.title COLLATE NOCASE")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seriesList := []*models.Series{}
	for rows.Next() {
		series, err := scanSeries(rows)
		if err != nil {
			return nil, err
		}
		seriesList = append(seriesList, series)
	}
	return seriesList, rows.Err()
}

// GetAllSeriesByPath maps every series by its folder path for efficient lookup.
func (s *Store) GetAllSeriesByPath() (map[string]*models.Series, error) {
	seriesList, err := s.ListSeries()
	if err != nil {
		return nil, err
	}
	byPath := make(map[string]*models.Series, len(seriesList))
	for _, series := range seriesList {
		byPath[series.Path] = series
	}
	return byPath, nil
}

// DeleteSeries removes a series; its chapters are removed by the foreign key cascade.
func (s *Store) DeleteSeries(id int64) error {
	res, err := s.db.Exec("DELETE FROM series WHERE id = ?", id)
	if err != nil {
		return err
	}
	return checkAffected(res, ErrSeriesNotFound)
}
