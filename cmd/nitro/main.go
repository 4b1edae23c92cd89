package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nitro-lang/nitro/internal/logging"
	"github.com/nitro-lang/nitro/pkgs/config"
	nitroerrors "github.com/nitro-lang/nitro/pkgs/errors"
)

// Exit code constants
const (
	ExitSuccess          = 0
	ExitInvalidArguments = 1
	ExitIOError          = 2
	ExitParseError       = 3
	ExitRenderError      = 4
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// app carries the resolved settings and streams shared by all subcommands
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	flags      config.Config
	noColor    bool

	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
}

// run executes the command line and returns the process exit code
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	code := ExitSuccess
	if err := root.ExecuteContext(ctx); err != nil {
		code = a.report(err)
	}
	if a.closeLog != nil {
		_ = a.closeLog()
	}
	return code
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nitro",
		Short:         "Scan and parse Nitro source files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to a nitro.toml (default: ./nitro.toml when present)")
	flags.StringVar(&a.flags.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&a.flags.LogFile, "log-file", "", "Also write JSON logs to this file")
	flags.IntVar(&a.flags.TabWidth, "tab-width", 0, "Columns a tab advances (default 4)")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored diagnostics")

	root.AddCommand(a.tokensCmd(), a.parseCmd())
	return root
}

// flagKeys maps the persistent flags to the config keys they override
var flagKeys = map[string]string{
	"tab-width": "tab_width",
	"log-level": "log_level",
	"log-file":  "log_file",
}

// setup resolves the configuration and builds the logger. Flags given on
// the command line override the file even when zero.
func (a *app) setup(cmd *cobra.Command) error {
	var explicit []string
	for flag, key := range flagKeys {
		if cmd.Flags().Changed(flag) {
			explicit = append(explicit, key)
		}
	}

	cfg, err := config.Resolve(a.configPath, a.flags, explicit...)
	if err != nil {
		return exitWith(ExitInvalidArguments, err)
	}
	a.cfg = cfg

	logger, closeLog, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Stderr: a.stderr,
	})
	if err != nil {
		return exitWith(ExitIOError, nitroerrors.Wrap(nitroerrors.ErrConfig, "cannot set up logging", err))
	}
	a.logger = logger
	a.closeLog = closeLog

	logger.Debug("configuration resolved",
		"tab_width", cfg.TabWidth, "log_level", cfg.LogLevel, "format", cfg.Format)
	return nil
}

// exitError attaches a process exit code to an error
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func exitWith(code int, err error) error {
	return &exitError{code: code, err: err}
}

// report prints err and maps it to an exit code. Errors without a code
// come from cobra's argument and flag handling.
func (a *app) report(err error) int {
	code := ExitInvalidArguments
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		code = exitErr.code
	}

	msg := err.Error()
	var nitroErr *nitroerrors.NitroError
	if errors.As(err, &nitroErr) {
		msg = nitroErr.Message
		// Syntax errors were already printed one per line
		if nitroErr.Cause != nil && !nitroerrors.IsErrorType(err, nitroerrors.ErrFileParse) {
			msg += ": " + nitroErr.Cause.Error()
		}
		if a.logger != nil {
			path, _ := nitroErr.GetContext("path")
			a.logger.Debug("command failed", "type", nitroErr.Type, "path", path, "exit_code", code)
		}
	}

	useColor := shouldUseColor(a.stderr, a.noColor)
	fmt.Fprintf(a.stderr, "%s%s\n", Colorize("Error: ", ColorRed, useColor), msg)
	return code
}
