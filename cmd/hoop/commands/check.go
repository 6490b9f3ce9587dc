package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hoop/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that every order has the expected number of files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			folders, _ := cmd.Flags().GetStringSlice("folders")
			exts, _ := cmd.Flags().GetStringSlice("exts")
			reportCSV, _ := cmd.Flags().GetString("report-csv")

			_, err := c.app.Check(cmd.Context(), app.CheckOptions{
				Dir:        dir,
				Folders:    folders,
				Extensions: exts,
				ReportCSV:  reportCSV,
			})
			return err
		},
	}
	cmd.Flags().String("dir", "files", "Base files directory")
	cmd.Flags().StringSlice("folders", []string{"design", "labels"}, "Subfolders to scan")
	cmd.Flags().StringSlice("exts", []string{"pes", "png"}, "Extensions to consider")
	cmd.Flags().String("report-csv", "", "Write a per-order CSV report to this path")
	return cmd
}
