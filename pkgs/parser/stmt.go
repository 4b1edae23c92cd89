package parser

import (
	"github.com/nitro-lang/nitro/pkgs/ast"
	"github.com/nitro-lang/nitro/pkgs/lexer"
)

// statement parses one statement. On error it returns nil with the parser
// in panic mode; the caller resynchronizes.
func (p *Parser) statement() ast.Node {
	p.trace("statement")
	p.stmtStart = p.current

	switch p.current.Type {
	case lexer.LET:
		return p.varDecl()
	case lexer.IF:
		return p.conditional()
	case lexer.RETURN:
		return p.returnStmt()
	default:
		return p.expressionStmt()
	}
}

// varDecl parses `let NAME [= expr]`
func (p *Parser) varDecl() ast.Node {
	p.trace("varDecl")
	let := p.current
	p.advance()

	if !p.expect(lexer.IDENTIFIER, "expected variable name after 'let'") {
		return nil
	}
	decl := &ast.VarDecl{Name: p.previous.String(), Tok: let}

	if p.match(lexer.EQUALS) {
		decl.Value = p.expression()
	} else {
		decl.Value = &ast.NilLiteral{Tok: p.previous}
	}

	p.endStatement()
	return decl
}

// conditional parses an if statement with its else-if and else arms
func (p *Parser) conditional() ast.Node {
	p.trace("conditional")
	cond := &ast.Conditional{Tok: p.current}
	p.advance()

	cond.Branches = append(cond.Branches, p.branch("if condition"))
	if p.panicMode {
		return cond
	}

	for p.at(lexer.ELSE) {
		if p.next.Type == lexer.IF {
			p.advance()
			p.advance()
			cond.Branches = append(cond.Branches, p.branch("else if condition"))
			if p.panicMode {
				return cond
			}
			continue
		}

		p.advance()
		cond.Else = p.block("'else'")
		break
	}

	return cond
}

// branch parses `expr: block` after an if keyword
func (p *Parser) branch(what string) ast.Branch {
	return ast.Branch{
		Cond: p.expression(),
		Body: p.block(what),
	}
}

// returnStmt parses `return [expr]`
func (p *Parser) returnStmt() ast.Node {
	p.trace("returnStmt")
	ret := &ast.Return{Tok: p.current}
	p.advance()

	if !p.atStatementEnd() {
		ret.Value = p.expression()
	}

	p.endStatement()
	return ret
}

// expressionStmt parses a bare expression terminated by end of line
func (p *Parser) expressionStmt() ast.Node {
	p.trace("expressionStmt")
	expr := p.expression()
	p.endStatement()
	return expr
}

// funcDef parses `func NAME(PARAMS): block`
func (p *Parser) funcDef() ast.Node {
	p.trace("funcDef")
	p.stmtStart = p.current
	fn := &ast.FuncDef{Tok: p.current}
	p.advance()

	if !p.expect(lexer.IDENTIFIER, "expected function name after 'func'") {
		return nil
	}
	fn.Name = p.previous.String()

	if !p.expect(lexer.LPAREN, "expected '(' after function name") {
		return fn
	}

	if !p.at(lexer.RPAREN) {
		for {
			if !p.expect(lexer.IDENTIFIER, "expected parameter name") {
				return fn
			}
			fn.Params = append(fn.Params, p.previous.String())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}

	if !p.expect(lexer.RPAREN, "expected ')' after parameters") {
		return fn
	}

	fn.Body = p.block("function signature")
	return fn
}

// block parses `: EOL INDENT statements DEDENT`. It always returns a block,
// empty if the header is malformed.
func (p *Parser) block(after string) *ast.Block {
	p.trace("block")
	block := &ast.Block{Tok: p.current}

	if !p.expect(lexer.COLON, "expected ':' after "+after) {
		return block
	}
	if !p.expect(lexer.EOL, "expected end of line after ':'") {
		return block
	}
	if !p.expect(lexer.INDENT, "expected indented block") {
		return block
	}
	block.Tok = p.previous

	// Indents held by the enclosing sequence can only be closed there
	outer := p.heldIndents
	p.heldIndents = 0
	p.blockDepth++

	block.Statements = p.statements()
	p.blockDepth--

	if p.heldIndents < 0 {
		// An argument list already crossed the closing DEDENT
		p.heldIndents++
	} else {
		p.expect(lexer.DEDENT, "expected end of block")
	}
	p.heldIndents = outer + min(p.heldIndents, 0)
	return block
}

// atStatementEnd reports whether the current token ends a statement
func (p *Parser) atStatementEnd() bool {
	switch p.current.Type {
	case lexer.EOL, lexer.DEDENT, lexer.EOF:
		return true
	}
	return false
}

// endStatement consumes the end of line after a simple statement. A DEDENT
// or EOF also ends it and is left for the enclosing sequence.
func (p *Parser) endStatement() {
	if p.panicMode {
		return
	}
	if p.match(lexer.EOL) {
		return
	}
	if !p.atStatementEnd() {
		p.errorAtCurrent("expected end of line after statement")
	}
}
