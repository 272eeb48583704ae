// This file is responsible for reading chapter archives (.cbz, .cbr, .cb7,
// .cbt and their plain counterparts) to count the pages they contain.

package library

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archives"
)

var supportedArchiveExtensions = map[string]bool{
	".cbz": true, ".zip": true,
	".cbr": true, ".rar": true,
	".cb7": true, ".7z": true,
	".cbt": true, ".tar": true,
}

// IsSupportedArchive reports whether a file name looks like a chapter archive.
func IsSupportedArchive(name string) bool {
	return supportedArchiveExtensions[strings.ToLower(filepath.Ext(name))]
}

// isImageFile checks if a filename has a common image file extension.
func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".avif":
		return true
	}
	return false
}

// CountPages returns the number of image entries in an archive. The format
// is identified from the file name and its header, not the extension alone.
func CountPages(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	format, stream, err := archives.Identify(ctx, filepath.Base(path), f)
	if err != nil {
		return 0, fmt.Errorf("identifying archive %s: %w", path, err)
	}
	extractor, ok := format.(archives.Extractor)
	if !ok {
		return 0, fmt.Errorf("archive %s: %s is not an extractable format", path, format.Extension())
	}

	pages := 0
	err = extractor.Extract(ctx, stream, func(ctx context.Context, file archives.FileInfo) error {
		if !file.IsDir() && isImageFile(file.NameInArchive) {
			pages++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("reading archive %s: %w", path, err)
	}
	return pages, nil
}
