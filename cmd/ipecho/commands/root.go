package commands

import (
	"context"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	envFiles  []string
	logLevel  string
	logFormat string
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. Running the root command without a
// subcommand starts the server.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}
	serve := serveCmd(g)

	root := &cobra.Command{
		Use:          "ipecho",
		Short:        "Echo the caller's IP address over HTTP",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         serve.RunE,
	}

	root.PersistentFlags().StringSliceVar(&g.envFiles, "env-file", nil, "dotenv file(s) to load before reading the environment")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "log format: json or text (overrides LOG_FORMAT)")
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve, resolveCmd())
	return root
}
