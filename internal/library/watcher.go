// This file implements a file system watcher for incremental library scanning.
// OS-level events are collected and, after a quiet period, the touched
// series are re-synced.

package library

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/vrsandeep/mango-chapters/internal/jobs"
)

const defaultDebounceDelay = 2 * time.Second

// WatcherService watches the library directory for file system changes
// and triggers incremental syncs when archives are added, modified or deleted.
type WatcherService struct {
	ctx           jobs.JobContext
	watcher       *fsnotify.Watcher
	changedPaths  map[string]bool
	mu            sync.Mutex
	debounceTimer *time.Timer
	debounceDelay time.Duration
	onSync        func(paths []string, err error)
	stopChan      chan struct{}
	stopOnce      sync.Once
}

// NewWatcherService creates a new file system watcher service.
func NewWatcherService(ctx jobs.JobContext) *WatcherService {
	return &WatcherService{
		ctx:           ctx,
		changedPaths:  make(map[string]bool),
		debounceDelay: defaultDebounceDelay,
		stopChan:      make(chan struct{}),
	}
}

// SetDebounceDelay changes how long the watcher waits after the last event
// before syncing. It must be called before Start.
func (w *WatcherService) SetDebounceDelay(d time.Duration) {
	w.debounceDelay = d
}

// OnSync registers a callback invoked after every incremental sync.
// It must be called before Start.
func (w *WatcherService) OnSync(fn func(paths []string, err error)) {
	w.onSync = fn
}

// Start begins watching the library directory for changes.
func (w *WatcherService) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = watcher

	libraryPath := w.ctx.Config().Library.Path
	if err := w.addTree(libraryPath); err != nil {
		watcher.Close()
		return err
	}

	log.Printf("File watcher started for library: %s", libraryPath)
	go w.processEvents()
	return nil
}

// Stop stops the file watcher service. It is safe to call more than once.
func (w *WatcherService) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)
		w.mu.Lock()
		if w.debounceTimer != nil {
			w.debounceTimer.Stop()
		}
		w.mu.Unlock()
		if w.watcher != nil {
			err = w.watcher.Close()
		}
	})
	return err
}

// addTree watches root and every directory below it. fsnotify is not
// recursive.
func (w *WatcherService) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
}

func (w *WatcherService) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)

		case <-w.stopChan:
			return
		}
	}
}

func (w *WatcherService) handleEvent(event fsnotify.Event) {
	// Chmod fires when folders are opened or files read.
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	info, err := os.Stat(event.Name)
	isDir := err == nil && info.IsDir()

	switch {
	case isDir && event.Has(fsnotify.Create):
		if err := w.addTree(event.Name); err != nil {
			log.Printf("File watcher could not watch %s: %v", event.Name, err)
		}
		w.markChanged(event.Name)
	case isDir:
		// Writes to a directory entry carry no archive change.
	case IsSupportedArchive(filepath.Base(event.Name)):
		w.markChanged(event.Name)
	case err != nil && (event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)):
		// A removed directory can no longer be stat'ed.
		w.markChanged(event.Name)
	}
}

// markChanged records path and restarts the debounce timer.
func (w *WatcherService) markChanged(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.changedPaths[path] = true
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceDelay, w.triggerIncrementalScan)
}

func (w *WatcherService) triggerIncrementalScan() {
	select {
	case <-w.stopChan:
		return
	default:
	}

	w.mu.Lock()
	if len(w.changedPaths) == 0 {
		w.mu.Unlock()
		return
	}
	pathsToScan := make([]string, 0, len(w.changedPaths))
	for path := range w.changedPaths {
		pathsToScan = append(pathsToScan, path)
	}
	w.changedPaths = make(map[string]bool)
	w.mu.Unlock()

	log.Printf("File watcher detected %d changed path(s), triggering incremental scan", len(pathsToScan))

	err := IncrementalLibrarySync(w.ctx, pathsToScan)
	if err != nil {
		log.Printf("Incremental scan error: %v", err)
	}
	if w.onSync != nil {
		w.onSync(pathsToScan, err)
	}
}
