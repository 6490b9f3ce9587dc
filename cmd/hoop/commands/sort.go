package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hoop/internal/app"
)

func (c *CLI) newSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Group files by design and place them into one folder per person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dst, _ := cmd.Flags().GetString("dst")
			copyFiles, _ := cmd.Flags().GetBool("copy")
			csvName, _ := cmd.Flags().GetString("csv")
			manifest, _ := cmd.Flags().GetString("manifest")

			return c.app.Sort(cmd.Context(), app.SortOptions{
				SourceOptions: sourceOptions(cmd),
				Dst:           dst,
				Copy:          copyFiles,
				CSV:           csvName,
				Manifest:      manifest,
			})
		},
	}
	addSourceFlags(cmd)
	cmd.Flags().StringP("dst", "d", "sorted", "Destination root for grouped folders")
	cmd.Flags().Bool("copy", false, "Copy files instead of moving them")
	cmd.Flags().String("csv", "assignment.csv", "Assignment CSV name under <dst>/output (empty disables it)")
	cmd.Flags().String("manifest", "", "YAML manifest name under <dst>/output")
	return cmd
}
