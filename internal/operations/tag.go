package operations

import (
	"errors"
	"strings"

	"shoebox/internal/logging"
)

// TagPhoto appends a tag to a photo and persists the photo collection.
// Duplicate detection is case-insensitive; the stored tag keeps the entered
// casing, trimmed of surrounding whitespace, and lands at the end of the tag
// list. A duplicate aborts before any save.
func (r *Runner) TagPhoto(con Console, rawID, rawTag string) {
	if _, ok := parsePhotoID(rawID); !ok {
		con.Println(msgInvalidID)
		return
	}
	tag := strings.TrimSpace(rawTag)
	if tag == "" {
		con.Println(msgTagEmpty)
		return
	}

	photos, photo, err := r.loadPhotoForEdit(rawID)
	switch {
	case errors.Is(err, ErrPhotoNotFound):
		con.Println(msgPhotoNotFound)
		return
	case err != nil:
		con.Println(msgCouldNotLoadPhoto)
		return
	}

	if !photo.AddTag(tag) {
		con.Println(msgTagDuplicate)
		return
	}

	r.persistPhotos(con, photos)
	con.Println(msgTagAdded)

	r.logger.Info("photo tagged",
		logging.Int64("photo_id", photo.ID),
		logging.String("tag", tag))
}
