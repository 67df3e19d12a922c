package commands

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ipecho/internal/app"
	"github.com/dmitrymomot/ipecho/pkg/logger"
)

func serveCmd(g *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(g.envFiles...)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}
			if g.logLevel != "" {
				cfg.LogLevel = g.logLevel
			}
			if g.logFormat != "" {
				cfg.LogFormat = g.logFormat
			}

			log, err := app.NewLogger(cfg, logger.WithOutput(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			logger.SetAsDefault(log)

			if err := app.Run(cmd.Context(), cfg, log); err != nil {
				log.Error("service stopped with error", logger.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}
