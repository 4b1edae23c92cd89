package parser

import (
	"fmt"
	"strings"

	"github.com/nitro-lang/nitro/pkgs/lexer"
)

// ParseError is a single diagnostic with its source position
type ParseError struct {
	Line    int    // 1-based
	Column  int    // 0-based
	Message string // Clear, specific: "expected ':' after if condition"

	Got        lexer.TokenType // What we found instead
	Suggestion string          // Optional hint: "did you mean 'func'?"
}

// Error renders the diagnostic as `line:col: message`
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	if e.Suggestion != "" {
		msg += " (" + e.Suggestion + ")"
	}
	return msg
}

// ErrorList collects every diagnostic of one parse, in source order
type ErrorList []*ParseError

// Error joins all diagnostics, one per line
func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}

	lines := make([]string, len(l))
	for i, e := range l {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// Unwrap exposes the individual diagnostics to errors.Is and errors.As
func (l ErrorList) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errs
}

// describe names a token for use in a diagnostic
func describe(tok lexer.Token) string {
	switch tok.Type {
	case lexer.EOF:
		return "end of file"
	case lexer.EOL:
		return "end of line"
	case lexer.INDENT:
		return "indentation"
	case lexer.DEDENT:
		return "dedent"
	case lexer.IDENTIFIER:
		return fmt.Sprintf("identifier '%s'", tok.Text)
	}
	return fmt.Sprintf("'%s'", tok.Text)
}
