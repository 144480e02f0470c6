package main

import (
	"github.com/spf13/cobra"
)

func newTagCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tag <photo-id> <tag>",
		Short: "Append a tag to a photo",
		Long:  "Append a tag to a photo. Tags are deduplicated case-insensitively; the stored tag keeps the casing you entered.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := ctx.runner()
			if err != nil {
				return err
			}
			con := &answerConsole{out: cmd.OutOrStdout()}
			runner.TagPhoto(con, args[0], args[1])
			return nil
		},
	}
}
