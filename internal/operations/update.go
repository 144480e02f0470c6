package operations

import (
	"errors"
	"fmt"
	"strings"

	"shoebox/internal/logging"
)

// UpdatePhoto edits a photo's title and description. The current values are
// offered as defaults; input that is blank after trimming keeps the existing
// value, while any non-blank input replaces it verbatim, untrimmed, even when
// identical to the current value. The full photo collection is persisted
// afterwards.
//
// The returned error is non-nil only when the console itself fails (for
// example stdin closing mid-prompt); every catalog-level miss is reported as
// a printed message.
func (r *Runner) UpdatePhoto(con Console, rawID string) error {
	photos, photo, err := r.loadPhotoForEdit(rawID)
	switch {
	case errors.Is(err, ErrInvalidID):
		con.Println(msgInvalidID)
		return nil
	case errors.Is(err, ErrPhotoNotFound):
		con.Println(msgPhotoNotFound)
		return nil
	case err != nil:
		con.Println(msgCouldNotLoadPhoto)
		return nil
	}

	title, err := con.Prompt(fmt.Sprintf("New title [%s]: ", photo.Title))
	if err != nil {
		return err
	}
	description, err := con.Prompt(fmt.Sprintf("New description [%s]: ", photo.Description))
	if err != nil {
		return err
	}

	if strings.TrimSpace(title) != "" {
		photo.Title = title
	}
	if strings.TrimSpace(description) != "" {
		photo.Description = description
	}

	r.persistPhotos(con, photos)
	con.Println(msgPhotoUpdated)

	r.logger.Info("photo details updated",
		logging.Int64("photo_id", photo.ID),
		logging.String("filename", photo.Filename))
	return nil
}
