package operations

import (
	"strings"

	"shoebox/internal/catalog"
	"shoebox/internal/logging"
)

// albumListHeader is the first line of every album listing.
const albumListHeader = "filename,resolution,tags"

// ListAlbumPhotos prints one row per photo belonging to the named album, in
// storage order, as "filename,resolution,tags" with colon-joined tags. A
// photo without tags ends in an empty trailing field rather than a fallback
// word. Album name matching is case-insensitive on trimmed text.
func (r *Runner) ListAlbumPhotos(con Console, name string) {
	if strings.TrimSpace(name) == "" {
		con.Println(msgAlbumNameRequired)
		return
	}

	photos, photosErr := r.store.LoadPhotos()
	albums, albumsErr := r.store.LoadAlbums()
	if photosErr != nil || albumsErr != nil {
		con.Println(msgCouldNotLoadData)
		return
	}

	album, ok := catalog.FindAlbumByName(albums, name)
	if !ok {
		con.Println(msgAlbumNotFound)
		return
	}

	con.Println(albumListHeader)
	matched := 0
	for i := range photos {
		photo := &photos[i]
		if !photo.InAlbum(album.ID) {
			continue
		}
		con.Println(photo.Filename + "," + photo.Resolution.Display() + "," + catalog.Join(photo.Tags, ":", ""))
		matched++
	}

	r.logger.Debug("album listed",
		logging.Int64("album_id", album.ID),
		logging.String("album", album.Name),
		logging.Int("photo_count", matched))
}
