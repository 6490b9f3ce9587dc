// Package commands implements the CLI commands for hoop.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/hoop/internal/app"
	"go.trai.ch/hoop/internal/build"
	"go.trai.ch/hoop/internal/core/domain"
)

// CLI represents the command line interface for hoop.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(verbose, jsonLogs bool)
	Plan(ctx context.Context, opts app.PlanOptions) error
	Sort(ctx context.Context, opts app.SortOptions) error
	Check(ctx context.Context, opts app.CheckOptions) ([]domain.OrderReport, error)
	Export(ctx context.Context, opts app.ExportOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "hoop",
		Short:         "Deduplicate embroidery batches and split them between machine operators",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// Persistent flags go first so the version flag does not claim -v.
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to hoop.yaml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug output")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.app == nil {
			return
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		c.app.ConfigureLogging(verbose, jsonLogs)
	}

	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newSortCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newExportCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("src", "s", "files/design", "Source folder to scan for pattern files")
	cmd.Flags().IntP("people", "p", 0, "Number of people to assign work to (default: people_count from hoop.yaml)")
	cmd.Flags().BoolP("no-cache", "n", false, "Analyze every file again instead of using the digest cache")
}

func sourceOptions(cmd *cobra.Command) app.SourceOptions {
	configPath, _ := cmd.Flags().GetString("config")
	src, _ := cmd.Flags().GetString("src")
	people, _ := cmd.Flags().GetInt("people")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	return app.SourceOptions{
		ConfigPath: configPath,
		Src:        src,
		People:     people,
		NoCache:    noCache,
	}
}
