package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse builds the configuration from defaults, the optional YAML file,
// the environment and args. It returns shouldExit=true when help was
// requested or no cases file was given, after printing usage to output.
// Invalid input is reported as an *ExitError with code 2.
func Parse(args []string, output io.Writer) (cfg *Config, shouldExit bool, err error) {
	fs := flag.NewFlagSet("algokit", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
algokit - run declarative algorithm cases through the solver library.

Usage:
  algokit [options] [CASES_FILE]

Arguments:
  CASES_FILE
    Path to an .hcl file of case blocks.

Options:
`)
		fs.PrintDefaults()
	}

	configFlag := fs.String("config", os.Getenv(EnvConfigFile), "Path to a YAML configuration file.")
	casesFlag := fs.String("cases", "", "Path to the cases file.")
	workersFlag := fs.Int("workers", 0, "Number of cases solved concurrently.")
	logLevelFlag := fs.String("log-level", "", "Logging level: debug, info, warn or error.")
	envFlag := fs.String("env", "", "Logger preset: development or production.")
	failFastFlag := fs.Bool("fail-fast", false, "Stop at the first solver error.")

	if err = fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// 1) defaults, then file, then environment
	c := Default()
	if *configFlag != "" {
		if err = LoadFile(*configFlag, &c); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}
	FromEnv(&c)

	// 2) flags that were set explicitly win
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cases":
			c.CasesPath = *casesFlag
		case "workers":
			c.Workers = *workersFlag
		case "log-level":
			c.LogLevel = strings.ToLower(*logLevelFlag)
		case "env":
			c.Env = strings.ToLower(*envFlag)
		case "fail-fast":
			c.FailFast = *failFastFlag
		}
	})
	if fs.NArg() > 0 {
		c.CasesPath = fs.Arg(0)
	}

	if c.CasesPath == "" {
		fs.Usage()
		return nil, true, nil
	}
	if err = c.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &c, false, nil
}
