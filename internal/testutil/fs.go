package testutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// CreateTestCBZ is a helper function that creates a CBZ file with a given set
// of page names inside dir. It returns the path of the archive.
func CreateTestCBZ(t *testing.T, dir, name string, pages []string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", dir, err)
	}

	filePath := filepath.Join(dir, name)
	file, err := os.Create(filePath)
	if err != nil {
		t.Fatalf("Failed to create cbz file: %v", err)
	}
	defer file.Close()

	zipWriter := zip.NewWriter(file)
	for _, page := range pages {
		w, err := zipWriter.Create(page)
		if err != nil {
			t.Fatalf("Failed to create entry '%s' in zip: %v", page, err)
		}
		if _, err := w.Write([]byte("image data")); err != nil {
			t.Fatalf("Failed to write entry '%s' in zip: %v", page, err)
		}
	}
	if err := zipWriter.Close(); err != nil {
		t.Fatalf("Failed to finalize zip %s: %v", filePath, err)
	}
	return filePath
}
