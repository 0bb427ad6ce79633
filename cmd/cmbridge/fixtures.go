package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/spachava753/cmbridge/observe"
	"github.com/spachava753/cmbridge/replay"
	"github.com/spf13/cobra"
)

// registerFixtures registers the fixtures subcommand
func registerFixtures(rootCmd *cobra.Command, globalOptions *Options) {
	subCmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Manages the recorded boundary responses",
		Args:  cobra.NoArgs,
	}
	rootCmd.AddCommand(subCmd)

	subCmd.AddCommand(&cobra.Command{
		Use:   "import <file.json>",
		Short: "Imports a JSON array of fixtures, replacing matching ones (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()
			return importFixtures(ctx, log.Log, globalOptions.cfg.FixturesDB, args[0], cmd.InOrStdin())
		},
	})

	subCmd.AddCommand(&cobra.Command{
		Use:   "calls",
		Short: "Prints the boundary calls recorded so far as JSON lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()
			return printCalls(ctx, globalOptions.cfg.FixturesDB, cmd.OutOrStdout())
		},
	})
}

func importFixtures(ctx context.Context, logger observe.Logger, dbPath, path string, stdin io.Reader) error {
	logger = observe.ValidLoggerOrDefault(logger)
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	store, err := replay.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	n, err := store.Import(ctx, r)
	if err != nil {
		return err
	}
	logger.Infof("imported %d fixtures into %s", n, dbPath)
	return nil
}

type callLine struct {
	Op   string          `json:"op"`
	Args json.RawMessage `json:"args"`
	At   time.Time       `json:"at"`
}

func printCalls(ctx context.Context, dbPath string, w io.Writer) error {
	store, err := replay.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	calls, err := store.Calls(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	for _, c := range calls {
		if err := enc.Encode(callLine{Op: c.Op, Args: json.RawMessage(c.Args), At: c.At}); err != nil {
			return err
		}
	}
	return nil
}
