package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hoop/internal/app"
	"go.trai.ch/hoop/internal/core/domain"
)

func (c *CLI) newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Convert sorted PES files into DST files for the embroidery machines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dst, _ := cmd.Flags().GetString("dst")
			logName, _ := cmd.Flags().GetString("log")

			return c.app.Export(cmd.Context(), app.ExportOptions{
				Dst: dst,
				Log: logName,
			})
		},
	}
	cmd.Flags().StringP("dst", "d", "sorted", "Sorted tree produced by hoop sort")
	cmd.Flags().String("log", domain.ExportLogFile, "Mapping log name under <dst>/output")
	return cmd
}
