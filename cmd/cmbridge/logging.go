package main

//
// Logging functionality
//

import (
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/pkg/errors"
)

// setupLogging points log.Log at a CLI handler writing to w. The verbose
// flag wins over the configured level.
func setupLogging(w io.Writer, level string, verbose bool) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "parsing log level %q", level)
	}
	if verbose {
		lvl = log.DebugLevel
	}
	log.Log = &log.Logger{Handler: cli.New(w), Level: lvl}
	return nil
}
