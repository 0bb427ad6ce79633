package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/spachava753/cmbridge/jsbridge"
	"github.com/spf13/cobra"
)

// registerRun registers the run subcommand
func registerRun(rootCmd *cobra.Command, globalOptions *Options) {
	subCmd := &cobra.Command{
		Use:   "run <script.js>",
		Short: "Runs a JavaScript file with the contactsmanager module backed by fixtures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()
			return runMain(ctx, globalOptions, args[0])
		},
	}
	rootCmd.AddCommand(subCmd)
}

func runMain(ctx context.Context, opts *Options, scriptPath string) error {
	src, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}
	sess, err := opts.openSession()
	if err != nil {
		return err
	}
	defer sess.Close()
	if err := opts.initialize(ctx, sess.facade); err != nil {
		return err
	}
	bridge := jsbridge.New(sess.facade, log.Log)
	return bridge.RunScript(ctx, filepath.Base(scriptPath), string(src))
}
