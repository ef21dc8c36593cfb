package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRoutinesCommand(ctx *commandContext) *cobra.Command {
	var ranges rangeFlags
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "routines",
		Short: "Sum durations per date and color",
		Long: "Walks rows from --start until the first empty Date cell and totals the\n" +
			"Duration column per date and fill-color category.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRoutinesFlags(ranges); err != nil {
				return err
			}

			s, err := ctx.openSession(false)
			if err != nil {
				return err
			}
			defer s.close()

			result, err := s.engine.Routines(ranges.start)
			if err != nil {
				return err
			}
			if len(result) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No routines found")
				return nil
			}
			if err := renderRoutines(cmd, result); err != nil {
				return err
			}
			return out.persist(cmd, s, result)
		},
	}

	ranges.register(cmd)
	out.register(cmd)
	return cmd
}
