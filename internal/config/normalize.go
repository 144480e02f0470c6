package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.CatalogDir, err = expandPath(c.Paths.CatalogDir); err != nil {
		return fmt.Errorf("paths.catalog_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}

	if value := strings.TrimSpace(os.Getenv("SHOEBOX_PHOTOS_FILE")); value != "" {
		c.Paths.PhotosFile = value
	}
	if value := strings.TrimSpace(os.Getenv("SHOEBOX_ALBUMS_FILE")); value != "" {
		c.Paths.AlbumsFile = value
	}

	if strings.TrimSpace(c.Paths.PhotosFile) == "" {
		c.Paths.PhotosFile = filepath.Join(c.Paths.CatalogDir, defaultPhotosName)
	}
	if strings.TrimSpace(c.Paths.AlbumsFile) == "" {
		c.Paths.AlbumsFile = filepath.Join(c.Paths.CatalogDir, defaultAlbumsName)
	}
	if c.Paths.PhotosFile, err = expandPath(c.Paths.PhotosFile); err != nil {
		return fmt.Errorf("paths.photos_file: %w", err)
	}
	if c.Paths.AlbumsFile, err = expandPath(c.Paths.AlbumsFile); err != nil {
		return fmt.Errorf("paths.albums_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
