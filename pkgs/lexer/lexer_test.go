package lexer

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tokenExpectation is a comparable view of a Token for cmp.Diff
type tokenExpectation struct {
	Type   TokenType
	Text   string
	Line   int
	Column int
}

// assertTokens scans input and compares every token through EOF
func assertTokens(t *testing.T, name string, input string, expected []tokenExpectation, opts ...Option) {
	t.Helper()

	scanner := NewScanner([]byte(input), opts...)
	var actual []tokenExpectation
	for _, token := range scanner.Tokens() {
		actual = append(actual, tokenExpectation{
			Type:   token.Type,
			Text:   token.String(),
			Line:   token.Line,
			Column: token.Column,
		})
	}

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("%s: token mismatch (-want +got):\n%s", name, diff)
	}
}

func TestSimpleStatement(t *testing.T) {
	assertTokens(t, "let statement", "let x = 1 + 2.5\n", []tokenExpectation{
		{LET, "let", 1, 0},
		{IDENTIFIER, "x", 1, 4},
		{EQUALS, "=", 1, 6},
		{INTEGER, "1", 1, 8},
		{PLUS, "+", 1, 10},
		{FLOAT, "2.5", 1, 12},
		{EOL, "\n", 1, 15},
		{EOF, "", 2, 0},
	})
}

func TestOperators(t *testing.T) {
	input := "** * >> >= > << <= < == = != ! && & || | ^ ~ ( ) [ ] , : / + -"
	assertTokens(t, "operators", input, []tokenExpectation{
		{STAR_STAR, "**", 1, 0},
		{STAR, "*", 1, 3},
		{GT_GT, ">>", 1, 5},
		{GT_EQ, ">=", 1, 8},
		{GT, ">", 1, 11},
		{LT_LT, "<<", 1, 13},
		{LT_EQ, "<=", 1, 16},
		{LT, "<", 1, 19},
		{EQ_EQ, "==", 1, 21},
		{EQUALS, "=", 1, 24},
		{NOT_EQ, "!=", 1, 26},
		{BANG, "!", 1, 29},
		{AND_AND, "&&", 1, 31},
		{AMP, "&", 1, 34},
		{OR_OR, "||", 1, 36},
		{PIPE, "|", 1, 39},
		{CARET, "^", 1, 41},
		{TILDE, "~", 1, 43},
		{LPAREN, "(", 1, 45},
		{RPAREN, ")", 1, 47},
		{LSQUARE, "[", 1, 49},
		{RSQUARE, "]", 1, 51},
		{COMMA, ",", 1, 53},
		{COLON, ":", 1, 55},
		{SLASH, "/", 1, 57},
		{PLUS, "+", 1, 59},
		{MINUS, "-", 1, 61},
		{EOF, "", 1, 62},
	})
}

func TestOperatorsWithoutSpaces(t *testing.T) {
	assertTokens(t, "dense", "a**-b<<=c", []tokenExpectation{
		{IDENTIFIER, "a", 1, 0},
		{STAR_STAR, "**", 1, 1},
		{MINUS, "-", 1, 3},
		{IDENTIFIER, "b", 1, 4},
		{LT_LT, "<<", 1, 5},
		{EQUALS, "=", 1, 7},
		{IDENTIFIER, "c", 1, 8},
		{EOF, "", 1, 9},
	})
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "integer",
			input: "42",
			expected: []tokenExpectation{
				{INTEGER, "42", 1, 0},
				{EOF, "", 1, 2},
			},
		},
		{
			name:  "float",
			input: "3.14",
			expected: []tokenExpectation{
				{FLOAT, "3.14", 1, 0},
				{EOF, "", 1, 4},
			},
		},
		{
			name:  "trailing dot is still a float",
			input: "7.",
			expected: []tokenExpectation{
				{FLOAT, "7.", 1, 0},
				{EOF, "", 1, 2},
			},
		},
		{
			name:  "number followed by identifier",
			input: "12ab",
			expected: []tokenExpectation{
				{INTEGER, "12", 1, 0},
				{IDENTIFIER, "ab", 1, 2},
				{EOF, "", 1, 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.name, tt.input, tt.expected)
		})
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	for word, tokenType := range Keywords {
		t.Run(word, func(t *testing.T) {
			assertTokens(t, word, word, []tokenExpectation{
				{tokenType, word, 1, 0},
				{EOF, "", 1, len(word)},
			})
		})
	}

	assertTokens(t, "keyword prefix", "letter _x1 If", []tokenExpectation{
		{IDENTIFIER, "letter", 1, 0},
		{IDENTIFIER, "_x1", 1, 7},
		{IDENTIFIER, "If", 1, 11},
		{EOF, "", 1, 13},
	})
}

func TestCharAndStringLiterals(t *testing.T) {
	assertTokens(t, "literals", `'c' "hi\"x" 'ab' "open`, []tokenExpectation{
		{CHAR, "'c'", 1, 0},
		{STRING, `"hi\"x"`, 1, 4},
		{ILLEGAL, "malformed character literal", 1, 12},
		{ILLEGAL, "unterminated string", 1, 17},
		{EOF, "", 1, 22},
	})
}

func TestEmptyCharLiteral(t *testing.T) {
	assertTokens(t, "empty char", "'' x", []tokenExpectation{
		{ILLEGAL, "malformed character literal", 1, 0},
		{IDENTIFIER, "x", 1, 3},
		{EOF, "", 1, 4},
	})
}

func TestUnterminatedStringStopsAtNewline(t *testing.T) {
	assertTokens(t, "unterminated", "\"abc\nx", []tokenExpectation{
		{ILLEGAL, "unterminated string", 1, 0},
		{EOL, "\n", 1, 4},
		{IDENTIFIER, "x", 2, 0},
		{EOF, "", 2, 1},
	})
}

func TestUnknownCharacter(t *testing.T) {
	assertTokens(t, "unknown", "a % b", []tokenExpectation{
		{IDENTIFIER, "a", 1, 0},
		{ILLEGAL, "unknown character '%'", 1, 2},
		{IDENTIFIER, "b", 1, 4},
		{EOF, "", 1, 5},
	})
}

func TestComments(t *testing.T) {
	assertTokens(t, "comments", "a # hi\n# full\nb", []tokenExpectation{
		{IDENTIFIER, "a", 1, 0},
		{EOL, "\n", 1, 6},
		{EOL, "\n", 2, 6},
		{IDENTIFIER, "b", 3, 0},
		{EOF, "", 3, 1},
	})
}

func TestCarriageReturnIsWhitespace(t *testing.T) {
	assertTokens(t, "crlf", "a\r\nb", []tokenExpectation{
		{IDENTIFIER, "a", 1, 0},
		{EOL, "\n", 1, 2},
		{IDENTIFIER, "b", 2, 0},
		{EOF, "", 2, 1},
	})
}

func TestTabWidth(t *testing.T) {
	assertTokens(t, "tab width 8", "\tx", []tokenExpectation{
		{INDENT, "\t", 1, 0},
		{IDENTIFIER, "x", 1, 8},
		{DEDENT, "", 1, 9},
		{EOF, "", 1, 9},
	}, WithTabWidth(8))

	assertTokens(t, "inline tab", "a\tb", []tokenExpectation{
		{IDENTIFIER, "a", 1, 0},
		{IDENTIFIER, "b", 1, 5},
		{EOF, "", 1, 6},
	})
}

func TestEOFIsIdempotent(t *testing.T) {
	scanner := NewScanner([]byte("x"))
	scanner.Tokens()

	for i := 0; i < 3; i++ {
		tok := scanner.Next()
		if tok.Type != EOF {
			t.Fatalf("call %d after EOF: got %v", i, tok.Type)
		}
		if tok.Line != 1 || tok.Column != 1 {
			t.Errorf("call %d after EOF: position moved to %s", i, tok.Position())
		}
	}
}

func TestInitResetsState(t *testing.T) {
	scanner := NewScanner([]byte("if (a):\n\tb"), WithTelemetry())
	for i := 0; i < 8; i++ {
		scanner.Next()
	}
	if scanner.Depth() != 1 {
		t.Fatalf("expected depth 1 mid-block, got %d", scanner.Depth())
	}

	scanner.Init([]byte("y"))
	if scanner.Depth() != 0 {
		t.Errorf("Init did not reset indentation, depth %d", scanner.Depth())
	}

	tok := scanner.Next()
	if tok.Type != IDENTIFIER || tok.String() != "y" || tok.Line != 1 || tok.Column != 0 {
		t.Errorf("unexpected first token after Init: %v %q at %s", tok.Type, tok.String(), tok.Position())
	}
	if got := scanner.Telemetry()[IDENTIFIER].Count; got != 1 {
		t.Errorf("telemetry not reset by Init, IDENTIFIER count %d", got)
	}
}

func TestTelemetry(t *testing.T) {
	scanner := NewScanner([]byte("a + b + c"), WithTelemetry())
	scanner.Tokens()

	stats := scanner.Telemetry()
	if diff := cmp.Diff(TokenTelemetry{Type: IDENTIFIER, Count: 3}, stats[IDENTIFIER]); diff != "" {
		t.Errorf("IDENTIFIER telemetry (-want +got):\n%s", diff)
	}
	if stats[PLUS].Count != 2 {
		t.Errorf("expected 2 PLUS, got %d", stats[PLUS].Count)
	}
	if stats[EOF].Count != 1 {
		t.Errorf("expected 1 EOF, got %d", stats[EOF].Count)
	}

	if NewScanner(nil).Telemetry() != nil {
		t.Error("telemetry should be nil when disabled")
	}
}

func TestLoggerTracesTokens(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	NewScanner([]byte("x"), WithLogger(logger)).Tokens()

	out := buf.String()
	for _, want := range []string{"type=IDENTIFIER", "text=x", "pos=1:0", "type=EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace missing %q:\n%s", want, out)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if STAR_STAR.String() != "STAR_STAR" {
		t.Errorf("got %q", STAR_STAR.String())
	}
	if got := TokenType(999).String(); got != "TokenType(999)" {
		t.Errorf("got %q", got)
	}
	if !IsKeyword(MODULE) || IsKeyword(IDENTIFIER) {
		t.Error("IsKeyword misclassifies")
	}
	if !IsLiteral(NIL) || IsLiteral(PLUS) {
		t.Error("IsLiteral misclassifies")
	}
}
