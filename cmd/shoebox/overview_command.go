package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newOverviewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Summarize the catalog",
		Long:  "Summarize the catalog: collection sizes, distinct tag count, and per-album photo counts. Read-only.",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := ctx.runner()
			if err != nil {
				return err
			}
			overview, err := runner.BuildOverview()
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderStatusLine("Photos", statusInfo, strconv.Itoa(overview.PhotoCount), colorize))
			fmt.Fprintln(out, renderStatusLine("Albums", statusInfo, strconv.Itoa(overview.AlbumCount), colorize))
			fmt.Fprintln(out, renderStatusLine("Distinct tags", statusInfo, strconv.Itoa(overview.TagCount), colorize))

			if len(overview.Albums) == 0 {
				return nil
			}

			rows := make([][]string, 0, len(overview.Albums))
			for _, summary := range overview.Albums {
				rows = append(rows, []string{
					strconv.FormatInt(summary.Album.ID, 10),
					summary.Album.Name,
					strconv.Itoa(summary.PhotoCount),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Album", "Photos"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight},
			))
			return nil
		},
	}
}
