package main

import (
	"errors"

	"github.com/spf13/cobra"

	"shoebox/internal/catalog"
	"shoebox/internal/operations"
)

func newFindCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "find <photo-id>",
		Short: "Look up a photo by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := ctx.runner()
			if err != nil {
				return err
			}

			if asJSON {
				return findAsJSON(cmd, runner, args[0])
			}

			con := &answerConsole{out: cmd.OutOrStdout()}
			runner.FindPhoto(con, args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render the photo record as JSON")
	return cmd
}

// findAsJSON renders the raw record plus resolved album names, mirroring the
// fields of the text output.
func findAsJSON(cmd *cobra.Command, runner *operations.Runner, rawID string) error {
	found, err := runner.LookupPhoto(rawID)
	switch {
	case errors.Is(err, operations.ErrInvalidID):
		return errors.New("invalid photo ID")
	case errors.Is(err, operations.ErrPhotoNotFound):
		return errors.New("photo not found")
	case err != nil:
		return err
	}

	photo := found.Photo
	return writeJSON(cmd, struct {
		ID          int64    `json:"id"`
		Filename    string   `json:"filename"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Date        string   `json:"date"`
		Resolution  string   `json:"resolution"`
		Albums      []string `json:"albums"`
		Tags        []string `json:"tags"`
	}{
		ID:          photo.ID,
		Filename:    photo.Filename,
		Title:       photo.Title,
		Description: photo.Description,
		Date:        catalog.FormatDate(photo.Date),
		Resolution:  photo.Resolution.Display(),
		Albums:      catalog.ResolveAlbumNames(photo.Albums, found.Albums),
		Tags:        photo.Tags,
	})
}
