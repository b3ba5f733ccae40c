// Command algokit runs HCL case files through the solver library and prints
// a tab-separated report.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/algokit/internal/config"
	"github.com/katalvlaran/algokit/internal/logging"
	"github.com/katalvlaran/algokit/internal/runner"
)

// errCasesFailed signals a completed run with failing cases.
var errCasesFailed = errors.New("algokit: one or more cases did not pass")

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *config.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, executes the case file and writes the report to outW.
func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := config.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cases, err := runner.LoadFile(cfg.CasesPath)
	if err != nil {
		return err
	}
	logger.Debug("cases loaded", zap.String("path", cfg.CasesPath), zap.Int("count", len(cases)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, runErr := runner.New(*cfg, logger).Run(ctx, cases)
	if err = runner.Report(outW, results); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	if runner.Failed(results) {
		return errCasesFailed
	}

	return nil
}
