package parser

import (
	"errors"
	"strconv"

	"github.com/nitro-lang/nitro/pkgs/ast"
	"github.com/nitro-lang/nitro/pkgs/lexer"
)

// binaryTier maps the operator tokens of one precedence level to their ops
type binaryTier map[lexer.TokenType]ast.BinaryOp

// Precedence ladder, lowest binding first. Every tier is left-associative.
// Power and prefix sit above the ladder and recurse instead.
var binaryTiers = []binaryTier{
	{lexer.OR_OR: ast.Or, lexer.AND_AND: ast.And},
	{lexer.PIPE: ast.BitwiseOr, lexer.AMP: ast.BitwiseAnd, lexer.CARET: ast.BitwiseXor},
	{lexer.EQ_EQ: ast.Equal, lexer.NOT_EQ: ast.NotEqual},
	{lexer.GT: ast.Greater, lexer.GT_EQ: ast.GreaterEqual, lexer.LT: ast.Less, lexer.LT_EQ: ast.LessEqual},
	{lexer.LT_LT: ast.LShift, lexer.GT_GT: ast.RShift},
	{lexer.PLUS: ast.Add, lexer.MINUS: ast.Sub},
	{lexer.STAR: ast.Mult, lexer.SLASH: ast.Div},
}

var prefixOps = map[lexer.TokenType]ast.UnaryOp{
	lexer.PLUS:  ast.Identity,
	lexer.MINUS: ast.Negate,
	lexer.BANG:  ast.Not,
	lexer.TILDE: ast.BitwiseNot,
}

// expression parses a full expression starting at the lowest tier
func (p *Parser) expression() ast.Node {
	p.trace("expression")
	return p.binary(0)
}

// binary parses the tier at index level as a left-associative loop
func (p *Parser) binary(level int) ast.Node {
	if level == len(binaryTiers) {
		return p.power()
	}

	left := p.binary(level + 1)
	for {
		op, ok := binaryTiers[level][p.current.Type]
		if !ok {
			return left
		}
		tok := p.current
		p.advance()

		right := p.binary(level + 1)
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right, Tok: tok}
	}
}

// power parses `prefix ['**' power]`; recursing on the right makes it
// right-associative
func (p *Parser) power() ast.Node {
	left := p.prefix()
	if !p.at(lexer.STAR_STAR) {
		return left
	}

	tok := p.current
	p.advance()
	right := p.power()
	return &ast.BinaryExpr{Op: ast.Pow, Left: left, Right: right, Tok: tok}
}

// prefix parses any number of prefix operators before a primary
func (p *Parser) prefix() ast.Node {
	op, ok := prefixOps[p.current.Type]
	if !ok {
		return p.primary()
	}

	tok := p.current
	p.advance()
	return &ast.UnaryExpr{Op: op, Operand: p.prefix(), Tok: tok}
}

// primary parses literals, parenthesised expressions and invocations
func (p *Parser) primary() ast.Node {
	tok := p.current

	switch tok.Type {
	case lexer.INTEGER:
		p.advance()
		return &ast.IntegerLiteral{Value: parseInteger(tok.String()), Tok: tok}

	case lexer.FLOAT:
		p.advance()
		return &ast.FloatLiteral{Value: parseFloat(tok.String()), Tok: tok}

	case lexer.TRUE, lexer.FALSE:
		p.advance()
		return &ast.BooleanLiteral{Value: tok.Type == lexer.TRUE, Tok: tok}

	case lexer.NIL:
		p.advance()
		return &ast.NilLiteral{Tok: tok}

	case lexer.STRING:
		p.advance()
		return &ast.StringLiteral{Value: string(tok.Text[1 : len(tok.Text)-1]), Tok: tok}

	case lexer.CHAR:
		p.advance()
		return &ast.CharLiteral{Value: tok.Text[1], Tok: tok}

	case lexer.LPAREN:
		p.advance()
		expr := p.expression()
		if !p.expect(lexer.RPAREN, "expected ')' at end of expression") {
			return nil
		}
		return expr

	case lexer.IDENTIFIER:
		p.advance()
		return p.invocation(tok)
	}

	p.errorAtCurrent("expected expression")
	return nil
}

// invocation parses the optional argument list after a name. Line breaks
// and indentation changes inside the parentheses are ignored.
func (p *Parser) invocation(name lexer.Token) ast.Node {
	call := &ast.Invocation{Name: name.String(), Tok: name}
	if !p.match(lexer.LPAREN) {
		return call
	}

	p.skipLayout()
	if p.match(lexer.RPAREN) {
		return call
	}

	for {
		call.Args = append(call.Args, p.expression())
		p.skipLayout()
		if !p.match(lexer.COMMA) {
			break
		}
		p.skipLayout()
	}

	p.expect(lexer.RPAREN, "expected ')' after arguments")
	return call
}

// skipLayout consumes EOL, INDENT and DEDENT tokens inside an argument list,
// remembering the indentation so the block structure stays balanced. A
// DEDENT with nothing held closes the enclosing block and leaves the count
// negative until that block ends.
func (p *Parser) skipLayout() {
	for {
		switch p.current.Type {
		case lexer.EOL:
		case lexer.INDENT:
			p.heldIndents++
		case lexer.DEDENT:
			if p.heldIndents <= 0 && p.blockDepth == 0 {
				return
			}
			p.heldIndents--
		default:
			return
		}
		p.advance()
	}
}

// parseInteger converts a digit run. Values out of range clamp to the
// int64 limits; anything after the longest numeric prefix is ignored.
func parseInteger(text string) int64 {
	text = numericPrefix(text, false)
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return v
}

// parseFloat converts a decimal literal with the same leniency as parseInteger
func parseFloat(text string) float64 {
	text = numericPrefix(text, true)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return v
}

// numericPrefix returns the longest leading run of digits, with at most one
// decimal point when allowDot is set
func numericPrefix(text string, allowDot bool) string {
	seenDot := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case '0' <= ch && ch <= '9':
		case ch == '.' && allowDot && !seenDot:
			seenDot = true
		default:
			return text[:i]
		}
	}
	return text
}
