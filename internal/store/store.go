// Package store persists the two catalog documents.
//
// Each document is one JSON array on disk: the photo collection and the album
// collection. Loads read and parse the whole document; saves rewrite it in
// full as indented JSON through an atomic temp-file rename. Failures come back
// as errors naming the document and the underlying cause so callers can abort
// with a clear diagnostic instead of guessing at a half-loaded catalog.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"shoebox/internal/catalog"
	"shoebox/internal/config"
	"shoebox/internal/fileutil"
	"shoebox/internal/logging"
)

// Document names used in diagnostics.
const (
	DocumentPhotos = "photos"
	DocumentAlbums = "albums"
)

// Store reads and writes the catalog documents configured in cfg.
type Store struct {
	photosPath string
	albumsPath string
	logger     *slog.Logger
}

// New returns a Store bound to the configured document paths.
func New(cfg *config.Config, logger *slog.Logger) *Store {
	return &Store{
		photosPath: cfg.Paths.PhotosFile,
		albumsPath: cfg.Paths.AlbumsFile,
		logger:     logging.NewComponentLogger(logger, "store"),
	}
}

// LoadPhotos reads the photo collection in storage order.
func (s *Store) LoadPhotos() ([]catalog.Photo, error) {
	var photos []catalog.Photo
	if err := s.loadDocument(s.photosPath, DocumentPhotos, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// LoadAlbums reads the album collection in storage order.
func (s *Store) LoadAlbums() ([]catalog.Album, error) {
	var albums []catalog.Album
	if err := s.loadDocument(s.albumsPath, DocumentAlbums, &albums); err != nil {
		return nil, err
	}
	return albums, nil
}

// SavePhotos replaces the photo document with the given collection.
func (s *Store) SavePhotos(photos []catalog.Photo) error {
	return s.saveDocument(s.photosPath, DocumentPhotos, photos)
}

// SaveAlbums replaces the album document with the given collection.
func (s *Store) SaveAlbums(albums []catalog.Album) error {
	return s.saveDocument(s.albumsPath, DocumentAlbums, albums)
}

func (s *Store) loadDocument(path, name string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("load document failed",
			logging.String(logging.FieldDocument, name),
			logging.String("path", path),
			logging.Error(err))
		return fmt.Errorf("read %s document: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Error("parse document failed",
			logging.String(logging.FieldDocument, name),
			logging.String("path", path),
			logging.Error(err))
		return fmt.Errorf("parse %s document: %w", name, err)
	}
	return nil
}

func (s *Store) saveDocument(path, name string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		s.logger.Error("encode document failed",
			logging.String(logging.FieldDocument, name),
			logging.Error(err))
		return fmt.Errorf("encode %s document: %w", name, err)
	}
	data = append(data, '\n')

	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		s.logger.Error("save document failed",
			logging.String(logging.FieldDocument, name),
			logging.String("path", path),
			logging.Error(err))
		return fmt.Errorf("write %s document: %w", name, err)
	}

	s.logger.Debug("saved document",
		logging.String(logging.FieldDocument, name),
		logging.String("path", path))
	return nil
}
