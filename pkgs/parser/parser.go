// Package parser builds a Nitro AST from scanner tokens by recursive descent.
//
// Errors use panic mode: the first structural error in a statement is
// recorded, later ones are suppressed until the parser resynchronizes at the
// next statement boundary. Parsing never stops early, so every independent
// statement error in a file is reported once.
package parser

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nitro-lang/nitro/pkgs/ast"
	"github.com/nitro-lang/nitro/pkgs/invariant"
	"github.com/nitro-lang/nitro/pkgs/lexer"
)

// Parse scans and parses src. The returned root is never nil; when err is
// non-nil it is an ErrorList and the tree is partial.
func Parse(src []byte, opts ...Option) (*ast.Block, error) {
	config := newConfig(opts)
	scanner := lexer.NewScanner(src, config.scannerOptions()...)
	return newParser(scanner, config).Parse()
}

// Parser pulls tokens from a Scanner one at a time. It keeps the last
// consumed token, the current token and one token of lookahead.
type Parser struct {
	scanner *lexer.Scanner

	previous lexer.Token
	current  lexer.Token
	next     lexer.Token
	consumed int // tokens advanced past, for progress checks

	panicMode bool
	errors    ErrorList
	stmtStart lexer.Token // first token of the statement being parsed

	// INDENT tokens swallowed inside multi-line argument lists of the
	// current block whose matching DEDENT is still to come. Negative when
	// an argument list crossed the DEDENT that closes the block.
	heldIndents int
	blockDepth  int

	config *Config
}

// New creates a parser that consumes scanner exclusively
func New(scanner *lexer.Scanner, opts ...Option) *Parser {
	invariant.NotNil(scanner, "scanner")
	return newParser(scanner, newConfig(opts))
}

func newParser(scanner *lexer.Scanner, config *Config) *Parser {
	p := &Parser{scanner: scanner, config: config}
	p.current = scanner.Next()
	p.next = scanner.Next()
	return p
}

// Parse parses the whole input into a root block of function definitions
// and statements, in source order
func (p *Parser) Parse() (*ast.Block, error) {
	root := p.program()
	invariant.Postcondition(root != nil, "root must not be nil")

	if len(p.errors) > 0 {
		return root, p.errors
	}
	return root, nil
}

// Errors returns the diagnostics recorded so far
func (p *Parser) Errors() ErrorList {
	return p.errors
}

// program parses top-level definitions and statements until EOF
func (p *Parser) program() *ast.Block {
	p.trace("program")
	root := &ast.Block{Tok: p.current}

	for !p.at(lexer.EOF) {
		before := p.consumed

		switch {
		case p.match(lexer.EOL):
			continue
		case p.at(lexer.DEDENT):
			p.closeHeldIndent("unexpected dedent")
			continue
		case p.at(lexer.FUNC):
			root.Statements = appendNode(root.Statements, p.funcDef())
		default:
			root.Statements = appendNode(root.Statements, p.statement())
		}

		if p.panicMode {
			p.synchronize()
		}

		invariant.Invariant(p.consumed > before || p.at(lexer.EOF),
			"parser made no progress at %s on %v", p.current.Position(), p.current.Type)
	}

	return root
}

// statements parses a block body until the DEDENT that closes it
func (p *Parser) statements() []ast.Node {
	var nodes []ast.Node

	for !p.at(lexer.EOF) {
		if p.heldIndents < 0 {
			break
		}
		if p.at(lexer.DEDENT) {
			if p.heldIndents == 0 {
				break
			}
			p.closeHeldIndent("")
			continue
		}

		before := p.consumed
		if p.match(lexer.EOL) {
			continue
		}

		nodes = appendNode(nodes, p.statement())

		if p.panicMode {
			p.synchronize()
		}

		invariant.Invariant(p.consumed > before || p.at(lexer.DEDENT) || p.at(lexer.EOF),
			"parser made no progress at %s on %v", p.current.Position(), p.current.Type)
	}

	return nodes
}

// closeHeldIndent consumes a DEDENT that balances an INDENT swallowed by an
// argument list. Any other DEDENT is reported with msg.
func (p *Parser) closeHeldIndent(msg string) {
	if p.heldIndents > 0 {
		p.heldIndents--
	} else if msg != "" {
		p.errorAtCurrent(msg)
		p.panicMode = false
	}
	p.advance()
}

// synchronize skips to the next statement boundary and leaves panic mode.
// A block opened on the broken line is skipped along with it, as are any
// else clauses that follow that block.
func (p *Parser) synchronize() {
	depth := 0

	for !p.at(lexer.EOF) {
		switch p.current.Type {
		case lexer.INDENT:
			depth++
		case lexer.DEDENT:
			if depth == 0 {
				p.panicMode = false
				return
			}
			depth--
			if depth == 0 {
				p.advance()
				// else clauses belong to the broken conditional
				if !p.at(lexer.INDENT) && !p.at(lexer.ELSE) {
					p.panicMode = false
					return
				}
				continue
			}
		case lexer.EOL:
			if depth == 0 && p.next.Type != lexer.INDENT {
				p.advance()
				p.panicMode = false
				return
			}
		}
		p.advance()
	}

	p.panicMode = false
}

// Token window helpers

func (p *Parser) at(typ lexer.TokenType) bool {
	return p.current.Type == typ
}

func (p *Parser) advance() {
	p.previous = p.current
	p.current = p.next
	p.next = p.scanner.Next()
	p.consumed++
}

// match consumes the current token if it has one of the given types
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, typ := range types {
		if p.at(typ) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes a token of the given type or reports msg
func (p *Parser) expect(typ lexer.TokenType, msg string) bool {
	if p.match(typ) {
		return true
	}
	p.errorAtCurrent(msg)
	return false
}

// errorAtCurrent reports msg at the current token. Scanner errors carry their
// own diagnostic and replace msg.
func (p *Parser) errorAtCurrent(msg string) {
	tok := p.current
	if tok.Type == lexer.ILLEGAL {
		p.errorAt(tok, string(tok.Text), false)
		return
	}
	p.errorAt(tok, fmt.Sprintf("%s, got %s", msg, describe(tok)), true)
}

// errorAt records a diagnostic unless the parser is already in panic mode.
// With hint set, a misspelled keyword at tok or at the start of the
// statement earns a suggestion.
func (p *Parser) errorAt(tok lexer.Token, msg string, hint bool) {
	if p.panicMode {
		return
	}
	p.panicMode = true

	err := &ParseError{
		Line:    tok.Line,
		Column:  tok.Column,
		Message: msg,
		Got:     tok.Type,
	}

	for _, candidate := range []lexer.Token{tok, p.stmtStart} {
		if !hint || candidate.Type != lexer.IDENTIFIER {
			continue
		}
		if keyword := suggestKeyword(candidate.String()); keyword != "" {
			err.Suggestion = fmt.Sprintf("did you mean '%s'?", keyword)
			break
		}
	}

	p.errors = append(p.errors, err)

	if p.config.diagnostics != nil {
		fmt.Fprintf(p.config.diagnostics, "%s\n", err.Error())
	}
	p.config.logger.Debug("parse error", "pos", tok.Position(), "message", msg)
}

// trace logs entry into a production when debug logging is enabled
func (p *Parser) trace(production string) {
	if !p.config.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	p.config.logger.Debug("enter", "production", production, "token", p.current.Type.String(), "pos", p.current.Position())
}

// appendNode skips nodes lost to a parse error
func appendNode(nodes []ast.Node, n ast.Node) []ast.Node {
	if ast.IsNil(n) {
		return nodes
	}
	return append(nodes, n)
}
