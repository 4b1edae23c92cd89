package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/nitro-lang/nitro/pkgs/config"
	nitroerrors "github.com/nitro-lang/nitro/pkgs/errors"
	"github.com/nitro-lang/nitro/pkgs/parser"
	"github.com/nitro-lang/nitro/pkgs/printer"
)

func (a *app) parseCmd() *cobra.Command {
	var (
		format string
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a source file and print its syntax tree ('-' reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.cfg.Merge(config.Config{Format: format}, "format")
				if err := a.cfg.Validate(); err != nil {
					return exitWith(ExitInvalidArguments, err)
				}
			}

			path := args[0]
			if watch {
				return a.watch(cmd.Context(), path, func() error { return a.parseFile(path) })
			}
			return a.parseFile(path)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: tree or yaml (default tree)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-parse whenever the file changes")
	return cmd
}

// parseFile parses path and prints the tree. Diagnostics go to stderr as
// they are found.
func (a *app) parseFile(path string) error {
	src, err := a.readSource(path)
	if err != nil {
		return err
	}

	root, err := parser.Parse(src,
		parser.WithTabWidth(a.cfg.TabWidth),
		parser.WithLogger(a.logger),
		parser.WithDiagnostics(a.stderr),
	)
	if err != nil {
		var list parser.ErrorList
		count := 1
		if errors.As(err, &list) {
			count = len(list)
		}
		return exitWith(ExitParseError, nitroerrors.NewParseError(displayName(path), count, err))
	}

	a.logger.Info("parsed", "file", displayName(path), "statements", len(root.Statements))

	switch a.cfg.Format {
	case "yaml":
		out, err := printer.YAML(root)
		if err != nil {
			return exitWith(ExitRenderError, nitroerrors.Wrap(nitroerrors.ErrRender, "cannot encode tree as YAML", err))
		}
		if _, err := a.stdout.Write(out); err != nil {
			return exitWith(ExitRenderError, nitroerrors.Wrap(nitroerrors.ErrRender, "cannot write tree", err))
		}
	default:
		if err := printer.New(a.stdout).Print(root); err != nil {
			return exitWith(ExitRenderError, nitroerrors.Wrap(nitroerrors.ErrRender, "cannot write tree", err))
		}
	}
	return nil
}
