// Package testsupport provides shared fixtures for Shoebox tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"shoebox/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
// Document files point inside the temp catalog directory but are not created;
// seed them with WritePhotos/WriteAlbums.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CatalogDir = filepath.Join(base, "catalog")
	cfg.Paths.PhotosFile = filepath.Join(cfg.Paths.CatalogDir, "photos.json")
	cfg.Paths.AlbumsFile = filepath.Join(cfg.Paths.CatalogDir, "albums.json")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}
