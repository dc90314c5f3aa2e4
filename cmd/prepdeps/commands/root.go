// Package commands implements the CLI for prepdeps.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/prepdeps/internal/app"
	"go.trai.ch/prepdeps/internal/build"
)

// CLI represents the command line interface for prepdeps.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
//
// prepdeps takes no options. The process arguments are never handed to
// cobra, so flags, --help and cobra's hidden completion commands all run
// the fetch like a bare invocation.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	c.rootCmd = &cobra.Command{
		Use:                "prepdeps",
		Short:              "Fetch the third-party sources into lib/",
		Version:            build.Version,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context())
		},
	}

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetArgs([]string{})
	return c.rootCmd.ExecuteContext(ctx)
}
