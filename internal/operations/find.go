package operations

import (
	"errors"

	"shoebox/internal/catalog"
	"shoebox/internal/logging"
)

// FoundPhoto is the result of a photo lookup: the record itself plus the
// album collection needed to resolve its memberships at display time.
type FoundPhoto struct {
	Photo  *catalog.Photo
	Albums []catalog.Album
}

// LookupPhoto parses rawID and locates the photo. It loads both documents
// because rendering a photo resolves album names.
func (r *Runner) LookupPhoto(rawID string) (*FoundPhoto, error) {
	id, ok := parsePhotoID(rawID)
	if !ok {
		return nil, ErrInvalidID
	}

	photos, photosErr := r.store.LoadPhotos()
	albums, albumsErr := r.store.LoadAlbums()
	if photosErr != nil {
		return nil, photosErr
	}
	if albumsErr != nil {
		return nil, albumsErr
	}

	photo, ok := catalog.FindPhotoByID(photos, id)
	if !ok {
		return nil, ErrPhotoNotFound
	}
	return &FoundPhoto{Photo: photo, Albums: albums}, nil
}

// FindPhoto prints a photo's details: filename, title, formatted date,
// album names, and tags, with "None" standing in for empty lists.
func (r *Runner) FindPhoto(con Console, rawID string) {
	found, err := r.LookupPhoto(rawID)
	switch {
	case errors.Is(err, ErrInvalidID):
		con.Println(msgInvalidID)
		return
	case errors.Is(err, ErrPhotoNotFound):
		con.Println(msgPhotoNotFound)
		return
	case err != nil:
		con.Println(msgCouldNotLoadData)
		return
	}

	photo := found.Photo
	albumNames := catalog.ResolveAlbumNames(photo.Albums, found.Albums)

	con.Println("Filename: " + photo.Filename)
	con.Println("Title: " + photo.Title)
	con.Println("Date: " + catalog.FormatDate(photo.Date))
	con.Println("Albums: " + catalog.Join(albumNames, ", ", "None"))
	con.Println("Tags: " + catalog.Join(photo.Tags, ", ", "None"))

	r.logger.Debug("photo displayed",
		logging.Int64("photo_id", photo.ID),
		logging.String("filename", photo.Filename))
}
