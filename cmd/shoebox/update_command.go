package main

import (
	"github.com/spf13/cobra"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	var title string
	var description string

	cmd := &cobra.Command{
		Use:   "update <photo-id>",
		Short: "Edit a photo's title and description",
		Long:  "Edit a photo's title and description. Omitted flags leave the corresponding field unchanged, exactly like pressing enter at the interactive prompt.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := ctx.runner()
			if err != nil {
				return err
			}

			// The operation prompts twice: title, then description.
			con := &answerConsole{
				out:     cmd.OutOrStdout(),
				answers: []string{title, description},
			}
			return runner.UpdatePhoto(con, args[0])
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Replacement title")
	cmd.Flags().StringVar(&description, "description", "", "Replacement description")
	return cmd
}
