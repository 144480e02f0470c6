package operations

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"shoebox/internal/catalog"
	"shoebox/internal/logging"
	"shoebox/internal/store"
)

// Lookup failures the query helpers report. Load failures pass through as
// store errors and are matched by exclusion.
var (
	ErrInvalidID     = errors.New("invalid photo id")
	ErrPhotoNotFound = errors.New("photo not found")
	ErrAlbumNotFound = errors.New("album not found")
)

// User-facing literal messages shared by every front end.
const (
	msgInvalidID         = "Invalid ID"
	msgCouldNotLoadData  = "Could not load data files"
	msgCouldNotLoadPhoto = "Could not load photos"
	msgPhotoNotFound     = "Photo not found"
	msgAlbumNameRequired = "Album name required"
	msgAlbumNotFound     = "Album not found"
	msgTagEmpty          = "Tag cannot be empty"
	msgTagDuplicate      = "Tag already exists, no changes made"
	msgPhotoUpdated      = "Photo updated."
	msgTagAdded          = "Updated!"
)

// Runner executes catalog operations against a document store.
type Runner struct {
	store  *store.Store
	logger *slog.Logger
}

// NewRunner builds a Runner. A nil logger is replaced with a no-op logger.
func NewRunner(st *store.Store, logger *slog.Logger) *Runner {
	return &Runner{
		store:  st,
		logger: logging.NewComponentLogger(logger, "operations"),
	}
}

func parsePhotoID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// persistPhotos saves the full photo collection. A failed save is reported as
// a diagnostic but does not stop the caller from printing its success
// message; the original tool behaved this way and callers depend on it.
func (r *Runner) persistPhotos(con Console, photos []catalog.Photo) {
	if err := r.store.SavePhotos(photos); err != nil {
		con.Println("Warning: could not save photos: " + err.Error())
	}
}

// loadPhotoForEdit loads the photo collection and locates one photo in it.
// The returned pointer aliases the returned slice so edits survive the save.
func (r *Runner) loadPhotoForEdit(rawID string) ([]catalog.Photo, *catalog.Photo, error) {
	id, ok := parsePhotoID(rawID)
	if !ok {
		return nil, nil, ErrInvalidID
	}
	photos, err := r.store.LoadPhotos()
	if err != nil {
		return nil, nil, err
	}
	photo, ok := catalog.FindPhotoByID(photos, id)
	if !ok {
		return nil, nil, ErrPhotoNotFound
	}
	return photos, photo, nil
}
