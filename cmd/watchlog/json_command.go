package main

import (
	"github.com/spf13/cobra"
)

func newJSONCommand(ctx *commandContext) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "json",
		Short: "Project the worksheet to a keyed JSON mapping",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.openSession(false)
			if err != nil {
				return err
			}
			defer s.close()

			result, err := s.engine.ProjectJSON()
			if err != nil {
				return err
			}
			if err := writeJSON(cmd, result); err != nil {
				return err
			}
			return out.persist(cmd, s, result)
		},
	}

	out.register(cmd)
	return cmd
}
