package lexer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nitro-lang/nitro/pkgs/invariant"
)

// ASCII character lookup tables for fast classification
var (
	isDigit          [128]bool
	isIdentStart     [128]bool
	isIdentPart      [128]bool
	singleCharTokens [128]TokenType // ILLEGAL where the byte needs more than a table lookup
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		isDigit[i] = '0' <= ch && ch <= '9'
		isIdentStart[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
		isIdentPart[i] = isIdentStart[i] || isDigit[i]
		singleCharTokens[i] = ILLEGAL
	}

	singleCharTokens['('] = LPAREN
	singleCharTokens[')'] = RPAREN
	singleCharTokens['['] = LSQUARE
	singleCharTokens[']'] = RSQUARE
	singleCharTokens[','] = COMMA
	singleCharTokens[':'] = COLON
	singleCharTokens['+'] = PLUS
	singleCharTokens['-'] = MINUS
	singleCharTokens['/'] = SLASH
	singleCharTokens['^'] = CARET
	singleCharTokens['~'] = TILDE
}

// Scanner turns Nitro source into tokens, one per Next call.
//
// Leading tabs are structural: at the start of each logical line the tab
// count is compared with the indentation stack and INDENT or DEDENT tokens
// are produced. A line that closes several blocks at once yields one DEDENT
// per closed level, spread over consecutive calls.
type Scanner struct {
	src     []byte
	start   int // offset of the token being scanned
	current int // offset of the next unread byte
	line    int
	column  int

	startLine   int
	startColumn int

	indents        []int // strictly increasing, bottom is always 0
	pendingDedents int
	pendingError   string
	lineBegin      bool

	tabWidth  int
	logger    *slog.Logger
	telemetry map[TokenType]*TokenTelemetry
}

// NewScanner creates a scanner over src with optional configuration
func NewScanner(src []byte, opts ...Option) *Scanner {
	config := newConfig(opts)
	invariant.Positive(config.tabWidth, "tab width")

	s := &Scanner{
		tabWidth: config.tabWidth,
		logger:   config.logger,
	}
	if config.telemetry {
		s.telemetry = make(map[TokenType]*TokenTelemetry)
	}
	s.Init(src)
	return s
}

// Init resets the scanner with new input, keeping its configuration
func (s *Scanner) Init(src []byte) {
	s.src = src
	s.start = 0
	s.current = 0
	s.line = 1
	s.column = 0
	s.startLine = 1
	s.startColumn = 0
	s.indents = append(s.indents[:0], 0)
	s.pendingDedents = 0
	s.pendingError = ""
	s.lineBegin = true

	for k := range s.telemetry {
		delete(s.telemetry, k)
	}
}

// Next returns the next token. Once EOF has been returned every further
// call returns EOF again.
func (s *Scanner) Next() Token {
	tok := s.scan()

	if s.telemetry != nil {
		entry, ok := s.telemetry[tok.Type]
		if !ok {
			entry = &TokenTelemetry{Type: tok.Type}
			s.telemetry[tok.Type] = entry
		}
		entry.Count++
	}

	if s.logger.Enabled(context.Background(), slog.LevelDebug) {
		s.logger.Debug("token", "type", tok.Type.String(), "text", tok.String(), "pos", tok.Position())
	}

	return tok
}

// Tokens scans the remaining input and returns every token up to and
// including EOF. ILLEGAL tokens are included and scanning continues past them.
func (s *Scanner) Tokens() []Token {
	var tokens []Token
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

// Telemetry returns a copy of the per-type token counts, or nil when
// telemetry is disabled
func (s *Scanner) Telemetry() map[TokenType]TokenTelemetry {
	if s.telemetry == nil {
		return nil
	}

	result := make(map[TokenType]TokenTelemetry, len(s.telemetry))
	for k, v := range s.telemetry {
		result[k] = *v
	}
	return result
}

// Depth returns the number of open indentation levels
func (s *Scanner) Depth() int {
	return len(s.indents) - 1
}

func (s *Scanner) scan() Token {
	if s.pendingDedents > 0 {
		s.pendingDedents--
		return s.dedent()
	}

	if s.pendingError != "" {
		msg := s.pendingError
		s.pendingError = ""
		return s.errorToken(msg)
	}

	if s.lineBegin {
		s.lineBegin = false
		if tok, ok := s.resolveIndentation(); ok {
			return tok
		}
	}

	s.skipWhitespace()
	s.mark()

	if s.atEnd() {
		// Close every block still open so INDENT and DEDENT balance out
		if len(s.indents) > 1 {
			s.indents = s.indents[:len(s.indents)-1]
			return s.dedent()
		}
		return Token{Type: EOF, Line: s.line, Column: s.column}
	}

	ch := s.advance()

	if ch < 128 && singleCharTokens[ch] != ILLEGAL {
		return s.simple(singleCharTokens[ch])
	}

	switch ch {
	case '\n':
		return s.endOfLine()
	case '*':
		return s.simple(s.either('*', STAR_STAR, STAR))
	case '=':
		return s.simple(s.either('=', EQ_EQ, EQUALS))
	case '!':
		return s.simple(s.either('=', NOT_EQ, BANG))
	case '&':
		return s.simple(s.either('&', AND_AND, AMP))
	case '|':
		return s.simple(s.either('|', OR_OR, PIPE))
	case '>':
		if s.match('>') {
			return s.simple(GT_GT)
		}
		return s.simple(s.either('=', GT_EQ, GT))
	case '<':
		if s.match('<') {
			return s.simple(LT_LT)
		}
		return s.simple(s.either('=', LT_EQ, LT))
	case '\'':
		return s.char()
	case '"':
		return s.string()
	}

	if ch < 128 && isDigit[ch] {
		return s.number()
	}
	if ch < 128 && isIdentStart[ch] {
		return s.identifierOrKeyword()
	}

	return s.errorToken(fmt.Sprintf("unknown character %q", ch))
}

// resolveIndentation consumes the leading tabs of a line and reports
// whether they produced an INDENT or DEDENT token
func (s *Scanner) resolveIndentation() (Token, bool) {
	s.mark()

	level := 0
	for s.peek() == '\t' {
		s.advance()
		level++
	}

	// Blank and comment-only lines carry no structure; trailing blocks are
	// closed by the EOF path
	if s.restOfLineIsBlank() {
		return Token{}, false
	}

	top := s.indents[len(s.indents)-1]

	switch {
	case level > top:
		s.indents = append(s.indents, level)
		s.checkIndents()
		return s.simple(INDENT), true

	case level < top:
		popped := 0
		for level < s.indents[len(s.indents)-1] {
			s.indents = s.indents[:len(s.indents)-1]
			popped++
		}
		if s.indents[len(s.indents)-1] != level {
			s.pendingError = "inconsistent dedent"
		}
		s.checkIndents()
		s.pendingDedents = popped - 1
		return s.dedent(), true
	}

	return Token{}, false
}

// restOfLineIsBlank reports whether only spaces, tabs, a comment, or the
// end of input remain before the next newline
func (s *Scanner) restOfLineIsBlank() bool {
	for i := s.current; i < len(s.src); i++ {
		switch s.src[i] {
		case ' ', '\t', '\r':
			continue
		case '\n', '#':
			return true
		default:
			return false
		}
	}
	return true
}

func (s *Scanner) checkIndents() {
	invariant.Invariant(s.indents[0] == 0, "indent stack must start at 0")
	for i := 1; i < len(s.indents); i++ {
		invariant.Invariant(s.indents[i-1] < s.indents[i],
			"indent stack must be strictly increasing, got %v", s.indents)
	}
}

// skipWhitespace skips spaces, tabs, carriage returns and comments, but never newlines
func (s *Scanner) skipWhitespace() {
	for !s.atEnd() {
		switch s.peek() {
		case ' ', '\t', '\r':
			s.advance()
		case '#':
			for !s.atEnd() && s.peek() != '\n' {
				s.advance()
			}
		default:
			return
		}
	}
}

func (s *Scanner) endOfLine() Token {
	tok := s.simple(EOL)
	s.line++
	s.column = 0
	s.lineBegin = true
	return tok
}

func (s *Scanner) number() Token {
	s.digits()

	if !s.match('.') {
		return s.simple(INTEGER)
	}

	s.digits()
	return s.simple(FLOAT)
}

func (s *Scanner) digits() {
	for !s.atEnd() && s.peek() < 128 && isDigit[s.peek()] {
		s.advance()
	}
}

func (s *Scanner) identifierOrKeyword() Token {
	for !s.atEnd() && s.peek() < 128 && isIdentPart[s.peek()] {
		s.advance()
	}

	if keyword, ok := Keywords[string(s.src[s.start:s.current])]; ok {
		return s.simple(keyword)
	}
	return s.simple(IDENTIFIER)
}

// char scans a character literal: exactly one byte between single quotes
func (s *Scanner) char() Token {
	if !s.atEnd() && s.peek() != '\n' && s.peek() != '\'' {
		s.advance()
		if s.match('\'') {
			return s.simple(CHAR)
		}
	}

	// Skip the rest of the malformed literal so it does not cascade
	for !s.atEnd() && s.peek() != '\n' {
		if s.advance() == '\'' {
			break
		}
	}
	return s.errorToken("malformed character literal")
}

// string scans a double quoted string. A backslash always takes the next
// byte with it; the escape is not validated here.
func (s *Scanner) string() Token {
	for !s.atEnd() {
		switch s.peek() {
		case '"':
			s.advance()
			return s.simple(STRING)
		case '\n':
			return s.errorToken("unterminated string")
		case '\\':
			s.advance()
			if s.atEnd() || s.peek() == '\n' {
				return s.errorToken("unterminated string")
			}
			s.advance()
		default:
			s.advance()
		}
	}
	return s.errorToken("unterminated string")
}

// mark records the start of the next token
func (s *Scanner) mark() {
	s.start = s.current
	s.startLine = s.line
	s.startColumn = s.column
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.src)
}

// advance consumes one byte and returns it, or 0 at the end of input
func (s *Scanner) advance() byte {
	if s.atEnd() {
		return 0
	}

	ch := s.src[s.current]
	s.current++
	if ch == '\t' {
		s.column += s.tabWidth
	} else {
		s.column++
	}
	return ch
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

// match consumes the next byte if it equals expected
func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.src[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

// either resolves a one or two character operator with a single byte of lookahead
func (s *Scanner) either(second byte, double, single TokenType) TokenType {
	if s.match(second) {
		return double
	}
	return single
}

func (s *Scanner) simple(tokenType TokenType) Token {
	return Token{
		Type:   tokenType,
		Text:   s.src[s.start:s.current],
		Line:   s.startLine,
		Column: s.startColumn,
	}
}

// dedent has no text and sits at the start of the line that closed the
// block, where mark left the scanner before the leading tabs
func (s *Scanner) dedent() Token {
	return Token{Type: DEDENT, Line: s.startLine, Column: s.startColumn}
}

func (s *Scanner) errorToken(msg string) Token {
	return Token{
		Type:   ILLEGAL,
		Text:   []byte(msg),
		Line:   s.startLine,
		Column: s.startColumn,
	}
}
