package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"shoebox/internal/config"
)

// WriteDocument writes raw JSON to the target path, creating parents.
func WriteDocument(t testing.TB, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WritePhotos seeds the photo document with raw JSON.
func WritePhotos(t testing.TB, cfg *config.Config, contents string) {
	t.Helper()
	WriteDocument(t, cfg.Paths.PhotosFile, contents)
}

// WriteAlbums seeds the album document with raw JSON.
func WriteAlbums(t testing.TB, cfg *config.Config, contents string) {
	t.Helper()
	WriteDocument(t, cfg.Paths.AlbumsFile, contents)
}

// ReadDocument returns the current raw contents of path.
func ReadDocument(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
