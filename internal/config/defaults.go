package config

const (
	defaultCatalogDir = "~/.local/share/shoebox"
	defaultLogDir     = "~/.local/share/shoebox/logs"
	defaultPhotosName = "photos.json"
	defaultAlbumsName = "albums.json"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults. Document file
// paths are derived from the catalog directory during normalization when not
// set explicitly.
func Default() Config {
	return Config{
		Paths: Paths{
			CatalogDir: defaultCatalogDir,
			LogDir:     defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
