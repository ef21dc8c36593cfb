package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newDuplicatesCommand(ctx *commandContext) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "duplicates",
		Short: "Detect repeated links",
		Long: "Scans the link column until the first empty cell and reports every link\n" +
			"appearing more than once with its zero-based positions.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !out.write {
				return errors.New("duplicates requires --output")
			}

			s, err := ctx.openSession(false)
			if err != nil {
				return err
			}
			defer s.close()

			result, err := s.engine.Duplicates()
			if err != nil {
				return err
			}
			if len(result) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No duplicates found")
				return nil
			}
			if err := renderDuplicates(cmd, result); err != nil {
				return err
			}
			return out.persist(cmd, s, result)
		},
	}

	out.register(cmd)
	return cmd
}
