// This file contains the main logic for scanning the library directory.
// Every top-level directory of the library is a series and every archive
// below it is a chapter whose number is recognised from its file name.

package library

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vrsandeep/mango-chapters/internal/chapter"
	"github.com/vrsandeep/mango-chapters/internal/jobs"
	"github.com/vrsandeep/mango-chapters/internal/models"
	"github.com/vrsandeep/mango-chapters/internal/store"
	"golang.org/x/text/unicode/norm"
)

// ReparseJobID identifies the job that recomputes stored chapter numbers.
const ReparseJobID = "reparse-chapters"

// SyncResult summarises a library sync.
type SyncResult struct {
	Series       int `json:"series"`
	Chapters     int `json:"chapters"`
	Unrecognized int `json:"unrecognized"`
	Failed       int `json:"failed"`
	Pruned       int `json:"pruned"`
}

// syncer carries the state of one sync run.
type syncer struct {
	st         *store.Store
	root       string
	dbSeries   map[string]*models.Series
	dbChapters map[string]store.ChapterInfo
	seen       map[string]bool
	result     SyncResult
}

func newSyncer(ctx jobs.JobContext) (*syncer, error) {
	st := store.New(ctx.DB())
	dbSeries, err := st.GetAllSeriesByPath()
	if err != nil {
		return nil, fmt.Errorf("loading series: %w", err)
	}
	dbChapters, err := st.GetAllChaptersByPath()
	if err != nil {
		return nil, fmt.Errorf("loading chapters: %w", err)
	}
	return &syncer{
		st:         st,
		root:       filepath.Clean(ctx.Config().Library.Path),
		dbSeries:   dbSeries,
		dbChapters: dbChapters,
		seen:       make(map[string]bool),
	}, nil
}

// ChapterText returns the text a chapter number is recognised from: the
// archive's file name without extension, in NFC form.
func ChapterText(path string) string {
	name := filepath.Base(path)
	return norm.NFC.String(strings.TrimSuffix(name, filepath.Ext(name)))
}

// SeriesTitle returns the series title for a series directory.
func SeriesTitle(dir string) string {
	return norm.NFC.String(filepath.Base(dir))
}

// LibrarySync performs a full synchronization between the filesystem and the
// database. It is registered as a job with the JobManager.
func LibrarySync(ctx jobs.JobContext) {
	if _, err := Sync(ctx); err != nil {
		log.Printf("Library sync failed: %v", err)
		sendProgress(ctx, jobs.LibrarySyncJobID, fmt.Sprintf("Library sync failed: %v", err), 100, true)
	}
}

// Sync walks the whole library, records every series and chapter and prunes
// what is no longer on disk.
func Sync(ctx jobs.JobContext) (SyncResult, error) {
	jobId := jobs.LibrarySyncJobID
	sendProgress(ctx, jobId, "Starting library sync...", 0, false)

	s, err := newSyncer(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	sendProgress(ctx, jobId, "Discovering series on disk...", 5, false)
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return SyncResult{}, fmt.Errorf("reading library %s: %w", s.root, err)
	}

	var seriesDirs []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			seriesDirs = append(seriesDirs, filepath.Join(s.root, e.Name()))
		}
	}

	seenSeries := make(map[string]bool)
	for i, dir := range seriesDirs {
		progress := 10 + float64(i)/float64(len(seriesDirs))*80
		sendProgress(ctx, jobId, fmt.Sprintf("Syncing series %d/%d: %s", i+1, len(seriesDirs), filepath.Base(dir)), progress, false)
		if s.syncSeries(dir) {
			seenSeries[dir] = true
		}
	}

	sendProgress(ctx, jobId, "Pruning deleted items...", 90, false)
	s.pruneChapters(func(string) bool { return true })
	for path, series := range s.dbSeries {
		if seenSeries[path] {
			continue
		}
		log.Printf("Pruning deleted series: %s", path)
		if err := s.st.DeleteSeries(series.ID); err != nil {
			log.Printf("Error pruning series %s: %v", path, err)
			continue
		}
		s.result.Pruned++
	}

	r := s.result
	sendProgress(ctx, jobId, fmt.Sprintf("Library sync completed: %d series, %d chapters, %d unrecognized.", r.Series, r.Chapters, r.Unrecognized), 100, true)
	log.Println("Job finished:", jobId)
	return r, nil
}

// IncrementalLibrarySync re-syncs only the series whose directories contain
// one of the changed paths. A change to the library root itself falls back to
// a full sync.
func IncrementalLibrarySync(ctx jobs.JobContext, changedPaths []string) error {
	s, err := newSyncer(ctx)
	if err != nil {
		return err
	}

	dirs := make(map[string]bool)
	for _, p := range changedPaths {
		rel, err := filepath.Rel(s.root, filepath.Clean(p))
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		if rel == "." {
			_, err := Sync(ctx)
			return err
		}
		top := strings.SplitN(rel, string(filepath.Separator), 2)[0]
		if strings.HasPrefix(top, ".") {
			continue
		}
		dirs[filepath.Join(s.root, top)] = true
	}

	var gone []string
	for dir := range dirs {
		if !s.syncSeries(dir) {
			gone = append(gone, dir)
		}
	}
	s.pruneChapters(func(path string) bool {
		for dir := range dirs {
			if strings.HasPrefix(path, dir+string(filepath.Separator)) {
				return true
			}
		}
		return false
	})
	for _, dir := range gone {
		series, ok := s.dbSeries[dir]
		if !ok {
			continue
		}
		log.Printf("Pruning deleted series: %s", dir)
		if err := s.st.DeleteSeries(series.ID); err != nil {
			log.Printf("Error pruning series %s: %v", dir, err)
			continue
		}
		s.result.Pruned++
	}

	log.Printf("Incremental sync finished: %d series, %d chapters checked.", s.result.Series, s.result.Chapters)
	return nil
}

// syncSeries records the archives below dir. It reports false when dir no
// longer exists or holds no archives.
func (s *syncer) syncSeries(dir string) bool {
	paths := findArchives(dir)
	if len(paths) == 0 {
		return false
	}

	title := SeriesTitle(dir)
	series, err := s.st.GetOrCreateSeries(title, dir)
	if err != nil {
		log.Printf("Error creating series %s: %v", dir, err)
		return false
	}
	s.result.Series++

	for _, path := range paths {
		pages, err := CountPages(context.Background(), path)
		if err != nil {
			// Corrupted chapters are not stored; a stale row is pruned.
			log.Printf("Skipping corrupted archive %s: %v", path, err)
			s.result.Failed++
			continue
		}
		s.seen[path] = true

		text := ChapterText(path)
		number := chapter.ParseNumber(title, text)
		if number < 0 {
			s.result.Unrecognized++
		}
		s.result.Chapters++

		existing, ok := s.dbChapters[path]
		if ok && existing.SeriesID == series.ID && existing.Title == text &&
			existing.Number == number && existing.PageCount == pages {
			continue
		}
		if _, err := s.st.UpsertChapter(series.ID, path, text, number, pages); err != nil {
			log.Printf("Error saving chapter %s: %v", path, err)
		}
	}
	return true
}

// pruneChapters deletes stored chapters in scope that were not seen on disk.
func (s *syncer) pruneChapters(inScope func(path string) bool) {
	for path := range s.dbChapters {
		if s.seen[path] || !inScope(path) {
			continue
		}
		log.Printf("Pruning deleted chapter: %s", path)
		if err := s.st.DeleteChapterByPath(path); err != nil {
			log.Printf("Error pruning chapter %s: %v", path, err)
			continue
		}
		s.result.Pruned++
	}
}

// findArchives returns the supported archives below dir in lexical order.
func findArchives(dir string) []string {
	var paths []string
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsSupportedArchive(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	sort.Strings(paths)
	return paths
}

// ReparseChapters recomputes the number of every stored chapter. It is
// registered as a job so numbers follow recogniser changes without a rescan.
func ReparseChapters(ctx jobs.JobContext) {
	if _, err := Reparse(ctx); err != nil {
		log.Printf("Re-parse failed: %v", err)
		sendProgress(ctx, ReparseJobID, fmt.Sprintf("Re-parse failed: %v", err), 100, true)
	}
}

// Reparse updates stored chapter numbers and returns how many changed.
func Reparse(ctx jobs.JobContext) (int, error) {
	sendProgress(ctx, ReparseJobID, "Re-parsing chapter numbers...", 0, false)
	st := store.New(ctx.DB())

	items, err := st.ListChaptersForReparse()
	if err != nil {
		return 0, fmt.Errorf("listing chapters: %w", err)
	}

	updated := 0
	for i, item := range items {
		number := chapter.ParseNumber(item.SeriesTitle, item.Title)
		if number != item.Number {
			if err := st.UpdateChapterNumber(item.ChapterID, number); err != nil {
				log.Printf("Error updating chapter %d: %v", item.ChapterID, err)
				continue
			}
			updated++
		}
		if i%100 == 0 {
			sendProgress(ctx, ReparseJobID, fmt.Sprintf("Re-parsed %d/%d chapters", i+1, len(items)), float64(i)/float64(len(items))*100, false)
		}
	}

	sendProgress(ctx, ReparseJobID, fmt.Sprintf("Re-parse completed: %d of %d chapters changed.", updated, len(items)), 100, true)
	return updated, nil
}
