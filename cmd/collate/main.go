// Command collate merges or diffs two sorted line files.
//
//	collate [flags] <merge|diff> LEFT RIGHT
//
// merge writes every line of both files in order, writing lines present in both
// once. diff writes the lines of LEFT that are not in RIGHT. Both files must
// already be sorted under the chosen order; --check verifies that as they are read.
//
// Flags take precedence over COLLATE_* environment variables, which take
// precedence over the YAML file named by --config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/amp-labs/collate/logger"
	"github.com/amp-labs/collate/shutdown"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx := context.Background()

	log, err := logger.ConfigureLogging(ctx, "collate")
	if err != nil {
		fmt.Fprintln(os.Stderr, "collate:", err) //nolint:errcheck

		os.Exit(exitUsage)
	}

	handler := shutdown.SetupHandler(logger.WithLogger(ctx, log))
	handler.BeforeShutdown(func() {
		log.Info("interrupted, output is incomplete")
	})

	err = run(handler.Context(), os.Args[1:], os.Stdout, os.Stderr)

	handler.Stop()

	os.Exit(exitCode(handler.Context(), err))
}

func exitCode(ctx context.Context, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return exitUsage
	default:
		logger.Get(ctx).Error("collate failed", "error", err)

		return exitFailure
	}
}
