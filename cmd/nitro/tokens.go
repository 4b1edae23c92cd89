package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	nitroerrors "github.com/nitro-lang/nitro/pkgs/errors"
	"github.com/nitro-lang/nitro/pkgs/lexer"
)

func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a source file ('-' reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dumpTokens(args[0])
		},
	}
}

// lexemeEscaper keeps one token per output line
var lexemeEscaper = strings.NewReplacer("\t", `\t`, "\n", `\n`, "\x00", `\0`)

// dumpTokens prints every token up to and including EOF as
// [TYPE, "lexeme", line:col]. Scan errors are printed in place and make the
// command fail once the stream is exhausted.
func (a *app) dumpTokens(path string) error {
	src, err := a.readSource(path)
	if err != nil {
		return err
	}

	scanner := lexer.NewScanner(src,
		lexer.WithTabWidth(a.cfg.TabWidth),
		lexer.WithLogger(a.logger),
	)

	illegal := 0
	for {
		tok := scanner.Next()
		if tok.Type == lexer.ILLEGAL {
			illegal++
		}

		if _, err := fmt.Fprintf(a.stdout, "[%s, \"%s\", %d:%d]\n",
			tok.Type, lexemeEscaper.Replace(tok.String()), tok.Line, tok.Column); err != nil {
			return exitWith(ExitIOError, nitroerrors.Wrap(nitroerrors.ErrRender, "cannot write tokens", err))
		}

		if tok.Type == lexer.EOF {
			break
		}
	}

	if illegal > 0 {
		return exitWith(ExitParseError, nitroerrors.New(nitroerrors.ErrFileParse,
			fmt.Sprintf("%d scan error(s) in '%s'", illegal, displayName(path))))
	}
	return nil
}

// readSource reads path, or stdin for "-"
func (a *app) readSource(path string) ([]byte, error) {
	if path == "-" {
		src, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, exitWith(ExitIOError, nitroerrors.NewInputError("<stdin>", err))
		}
		return src, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, exitWith(ExitIOError, nitroerrors.Wrap(nitroerrors.ErrFileNotFound,
				fmt.Sprintf("file '%s' not found", path), err).WithContext("path", path))
		}
		return nil, exitWith(ExitIOError, nitroerrors.NewInputError(path, err))
	}
	return src, nil
}

func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}
