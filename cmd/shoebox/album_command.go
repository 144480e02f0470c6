package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newAlbumCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "album <name>",
		Short: "List the photos in a named album",
		Long:  "List the photos in a named album as filename,resolution,tags rows. The album name is matched case-insensitively; multi-word names may be passed as separate arguments.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := ctx.runner()
			if err != nil {
				return err
			}
			con := &answerConsole{out: cmd.OutOrStdout()}
			runner.ListAlbumPhotos(con, strings.Join(args, " "))
			return nil
		},
	}
}
