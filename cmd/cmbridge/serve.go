package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/apex/log"
	"github.com/spachava753/cmbridge/wsbridge"
	"github.com/spf13/cobra"
)

// registerServe registers the serve subcommand
func registerServe(rootCmd *cobra.Command, globalOptions *Options) {
	var (
		addr    string
		origins []string
	)
	subCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves the websocket bridge backed by fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()
			if addr == "" {
				addr = globalOptions.cfg.WSAddr
			}
			return serveMain(ctx, globalOptions, addr, origins)
		},
	}
	rootCmd.AddCommand(subCmd)
	flags := subCmd.Flags()

	flags.StringVar(
		&addr,
		"addr",
		"",
		"address to listen on (default from CMBRIDGE_WS_ADDR)",
	)

	flags.StringSliceVar(
		&origins,
		"origin",
		nil,
		"browser origin allowed to connect (may be specified multiple times)",
	)
}

func serveMain(ctx context.Context, opts *Options, addr string, origins []string) error {
	sess, err := opts.openSession()
	if err != nil {
		return err
	}
	defer sess.Close()
	if err := opts.initialize(ctx, sess.facade); err != nil {
		return err
	}
	log.WithField("addr", addr).Info("serving websocket bridge")
	err = wsbridge.ListenAndServe(ctx, addr, wsbridge.NewServer(sess.facade, log.Log, origins...))
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
