// Package commands implements the CLI for imk.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/snobb/imk/internal/build"
	"github.com/snobb/imk/internal/core/domain"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for imk.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	LoadConfig(path string) (*domain.Config, error)
	Run(ctx context.Context, cfg *domain.Config) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "imk -c <command> [flags] <path>...",
		Short: "Watch files and run a command when they change",
		Long: "imk watches files and directories for modification and move events and runs\n" +
			"a command on each qualifying event, optionally bounded by a timeout.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.run,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	registerFlags(rootCmd)
	c.rootCmd = rootCmd

	return c
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString(flagFile)

	cfg, err := c.app.LoadConfig(file)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd.Flags(), cfg); err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Paths = args
	}

	return c.app.Run(cmd.Context(), cfg)
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
