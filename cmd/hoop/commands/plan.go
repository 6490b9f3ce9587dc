package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hoop/internal/app"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the assignment without moving any file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Plan(cmd.Context(), app.PlanOptions{
				SourceOptions: sourceOptions(cmd),
				Watch:         watch,
			})
		},
	}
	addSourceFlags(cmd)
	cmd.Flags().BoolP("watch", "w", false, "Plan again whenever the source folder changes")
	return cmd
}
