package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"igcompare/config"
	"igcompare/logging"
	"igcompare/server"
)

// Build information set by ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	var (
		verbosity int
		addr      string
	)

	rootCmd := &cobra.Command{
		Use:   "igcompare",
		Short: "Compare your following and followers lists locally",
		Long: `igcompare serves a local page where you paste the accounts you follow and
the accounts that follow you. It lists who does not follow you back, who you
do not follow back, and your mutuals, and can download the result as CSV.
Nothing leaves your machine.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("verbose") {
				cfg.Log.Verbosity = verbosity
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logging.SetupLogger(cfg.Log.Verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			if cfg.Log.Verbosity < 2 {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Open http://%s in your browser\n", cfg.Server.Addr)

			return server.New(cfg).Run(ctx)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from IGCOMPARE_SERVER_ADDR or 127.0.0.1:5555)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "igcompare version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	})

	return rootCmd
}
