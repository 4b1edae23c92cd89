package lexer

import "fmt"

// TokenType represents the type of token in Nitro source
type TokenType int

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Layout
	INDENT // increase of leading tabs
	DEDENT // decrease of leading tabs, one per closed level
	EOL    // \n

	// Brackets
	LPAREN  // (
	RPAREN  // )
	LSQUARE // [
	RSQUARE // ]

	// Punctuation
	COMMA  // ,
	COLON  // :
	EQUALS // =

	// Arithmetic and bitwise operators
	PLUS      // +
	MINUS     // -
	STAR      // *
	STAR_STAR // **
	SLASH     // /
	AMP       // &
	PIPE      // |
	CARET     // ^
	TILDE     // ~
	BANG      // !

	// Two-character operators
	GT_GT   // >>
	LT_LT   // <<
	EQ_EQ   // ==
	NOT_EQ  // !=
	AND_AND // &&
	OR_OR   // ||

	// Comparison
	GT    // >
	GT_EQ // >=
	LT    // <
	LT_EQ // <=

	// Literals
	INTEGER // 42
	FLOAT   // 3.14
	CHAR    // 'c'
	STRING  // "text"

	IDENTIFIER

	// Keywords
	IF
	ELSE
	WHILE
	FOR
	CONTINUE
	BREAK
	RETURN
	FUNC
	LET
	TRUE
	FALSE
	NIL
	MODULE
)

// Pre-computed token name lookup for fast debugging
var tokenNames = [...]string{
	EOF:        "EOF",
	ILLEGAL:    "ILLEGAL",
	INDENT:     "INDENT",
	DEDENT:     "DEDENT",
	EOL:        "EOL",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LSQUARE:    "LSQUARE",
	RSQUARE:    "RSQUARE",
	COMMA:      "COMMA",
	COLON:      "COLON",
	EQUALS:     "EQUALS",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	STAR:       "STAR",
	STAR_STAR:  "STAR_STAR",
	SLASH:      "SLASH",
	AMP:        "AMP",
	PIPE:       "PIPE",
	CARET:      "CARET",
	TILDE:      "TILDE",
	BANG:       "BANG",
	GT_GT:      "GT_GT",
	LT_LT:      "LT_LT",
	EQ_EQ:      "EQ_EQ",
	NOT_EQ:     "NOT_EQ",
	AND_AND:    "AND_AND",
	OR_OR:      "OR_OR",
	GT:         "GT",
	GT_EQ:      "GT_EQ",
	LT:         "LT",
	LT_EQ:      "LT_EQ",
	INTEGER:    "INTEGER",
	FLOAT:      "FLOAT",
	CHAR:       "CHAR",
	STRING:     "STRING",
	IDENTIFIER: "IDENTIFIER",
	IF:         "IF",
	ELSE:       "ELSE",
	WHILE:      "WHILE",
	FOR:        "FOR",
	CONTINUE:   "CONTINUE",
	BREAK:      "BREAK",
	RETURN:     "RETURN",
	FUNC:       "FUNC",
	LET:        "LET",
	TRUE:       "TRUE",
	FALSE:      "FALSE",
	NIL:        "NIL",
	MODULE:     "MODULE",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) && int(t) >= 0 {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Keywords maps reserved words to their token types
var Keywords = map[string]TokenType{
	"if":       IF,
	"else":     ELSE,
	"while":    WHILE,
	"for":      FOR,
	"continue": CONTINUE,
	"break":    BREAK,
	"return":   RETURN,
	"func":     FUNC,
	"let":      LET,
	"true":     TRUE,
	"false":    FALSE,
	"nil":      NIL,
	"module":   MODULE,
}

// Token represents a lexical token. Text borrows from the scanned source,
// except for ILLEGAL tokens where it holds the diagnostic message.
type Token struct {
	Type   TokenType
	Text   []byte
	Line   int // 1-based
	Column int // 0-based, tabs count as the configured tab width
}

// String returns the token text as a string (for testing and debugging)
func (t Token) String() string {
	return string(t.Text)
}

// Position returns the token location formatted as line:column
func (t Token) Position() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}

// IsSynthetic reports whether the token is layout produced by the scanner
// rather than text written in the source.
func (t Token) IsSynthetic() bool {
	switch t.Type {
	case INDENT, DEDENT, EOL, EOF:
		return true
	default:
		return false
	}
}

// IsKeyword checks if a token type is a reserved word
func IsKeyword(tokenType TokenType) bool {
	return tokenType >= IF && tokenType <= MODULE
}

// IsLiteral checks if a token type is a literal value
func IsLiteral(tokenType TokenType) bool {
	switch tokenType {
	case INTEGER, FLOAT, CHAR, STRING, TRUE, FALSE, NIL:
		return true
	default:
		return false
	}
}
