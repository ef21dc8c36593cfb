package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTagsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Sort tag columns ascending",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.openSession(false)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.engine.SortTags(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Tags sorted")
			return nil
		},
	}
	return cmd
}
