// Command cmbridge drives the contacts bridge against a recorded fixture
// boundary: it imports fixtures, runs JavaScript against the bridge, serves
// the websocket bridge and sends invitation emails.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/spachava753/cmbridge/config"
	"github.com/spachava753/cmbridge/native"
	"github.com/spachava753/cmbridge/observe"
	"github.com/spachava753/cmbridge/replay"
	"github.com/spachava753/cmbridge/service"
	"github.com/spf13/cobra"
)

// version is overridden at link time.
var version = "dev"

// Options contains the options you can set from the CLI.
type Options struct {
	EnvFiles    []string
	FixturesDB  string
	OptionsFile string
	Verbose     bool

	cfg config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var globalOptions Options

	rootCmd := &cobra.Command{
		Use:           "cmbridge",
		Short:         "Contacts bridge development tool",
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return globalOptions.setup(cmd)
		},
	}
	flags := rootCmd.PersistentFlags()

	flags.StringSliceVar(
		&globalOptions.EnvFiles,
		"env-file",
		nil,
		"load settings from this .env file (may be specified multiple times)",
	)

	flags.StringVar(
		&globalOptions.FixturesDB,
		"fixtures",
		"",
		"path of the sqlite fixture database (default from "+config.EnvFixturesDB+")",
	)

	flags.StringVar(
		&globalOptions.OptionsFile,
		"options",
		"",
		"JSON file with the SDK options passed to initialize",
	)

	flags.BoolVarP(
		&globalOptions.Verbose,
		"verbose",
		"v",
		false,
		"increase verbosity level",
	)

	registerFixtures(rootCmd, &globalOptions)
	registerRun(rootCmd, &globalOptions)
	registerServe(rootCmd, &globalOptions)
	registerInvite(rootCmd, &globalOptions)
	return rootCmd
}

// setup loads the configuration and installs the CLI log handler.
func (o *Options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.EnvFiles...)
	if err != nil {
		return err
	}
	if o.FixturesDB != "" {
		cfg.FixturesDB = o.FixturesDB
	}
	o.cfg = cfg
	return setupLogging(cmd.ErrOrStderr(), cfg.LogLevel, o.Verbose)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// session is an open fixture store with a facade over it.
type session struct {
	store  *replay.Store
	facade *service.Facade
}

func (o *Options) openSession() (*session, error) {
	store, err := replay.Open(o.cfg.FixturesDB)
	if err != nil {
		return nil, err
	}
	facade := service.New(
		service.WithBoundary(store.Boundary()),
		service.WithObserver(&observe.LogObserver{Logger: log.Log}),
		service.WithLimits(o.cfg.Limits),
	)
	return &session{store: store, facade: facade}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}

// initialize initializes the SDK with the configured credentials. It does
// nothing when no API key is configured.
func (o *Options) initialize(ctx context.Context, facade *service.Facade) error {
	if o.cfg.APIKey == "" {
		log.Debugf("%s is not set; skipping initialize", config.EnvAPIKey)
		return nil
	}
	var opts native.Options
	if o.OptionsFile != "" {
		var err error
		if opts, err = config.ReadOptions(o.OptionsFile); err != nil {
			return err
		}
	}
	user := native.UserInfo{UserID: o.cfg.UserID}
	if err := facade.Initialize(ctx, o.cfg.APIKey, user, o.cfg.Token, opts); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	log.Infof("initialized as %s", o.cfg.UserID)
	return nil
}
