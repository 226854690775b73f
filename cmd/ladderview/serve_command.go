package main

import (
	"fmt"
	"net"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"ladderview/internal/dataset"
	"ladderview/internal/logging"
	"ladderview/internal/web"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var opts inputOptions
	var bind string

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Run the HTTP viewer, optionally preloading a dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if bind = strings.TrimSpace(bind); bind != "" {
				if cfg.Share.BaseURL == "http://"+cfg.Server.Bind {
					cfg.Share.BaseURL = "http://" + bind
				}
				cfg.Server.Bind = bind
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("--bind: %w", err)
				}
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			store := &dataset.Store{}
			if len(args) > 0 || opts.fromClipboard {
				ds, err := opts.load(args)
				if err != nil {
					return err
				}
				store.Replace(ds)
				logger.Info("dataset preloaded",
					logging.String(logging.FieldSource, ds.Source()),
					logging.Int("records", ds.Len()),
				)
			}

			srv, err := web.New(cfg, logger, store)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			return srv.Run(runCtx, func(addr net.Addr) {
				fmt.Fprintf(out, "Viewer listening on http://%s\n", addr)
				fmt.Fprintf(out, "Share links point at %s\n", cfg.Share.BaseURL)
			})
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Override server.bind")
	cmd.Flags().BoolVar(&opts.fromClipboard, "from-clipboard", false, "Preload pasted JSON from the clipboard")
	return cmd
}
