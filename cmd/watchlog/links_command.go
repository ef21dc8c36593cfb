package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLinksCommand(ctx *commandContext) *cobra.Command {
	var ranges rangeFlags
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "links",
		Short: "Enrich link rows with catalog metadata",
		Long: "Scans the selected row window for video links whose record is still\n" +
			"incomplete, fetches duration, publish time, and author from the catalog,\n" +
			"and fills the placeholder cells. Cells already holding a value are never\n" +
			"overwritten.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateLinksFlags(ranges); err != nil {
				return err
			}

			s, err := ctx.openSession(true)
			if err != nil {
				return err
			}
			defer s.close()

			result, err := s.engine.Links(cmd.Context(), ranges.window())
			if err != nil {
				return err
			}
			if len(result) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No rows needed enrichment")
				return nil
			}
			if err := renderLinks(cmd, result); err != nil {
				return err
			}
			return out.persist(cmd, s, result)
		},
	}

	ranges.register(cmd)
	out.register(cmd)
	return cmd
}
