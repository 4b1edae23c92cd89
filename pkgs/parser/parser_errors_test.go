package parser

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitro-lang/nitro/pkgs/lexer"
)

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		errors   []string
		wantTree string // root rendered with String, empty to skip
	}{
		{
			name:   "missing variable name",
			input:  "let = 5\n",
			errors: []string{"1:4: expected variable name after 'let', got '='"},
		},
		{
			name:     "missing close paren yields no node",
			input:    "(1 + 2\n",
			errors:   []string{"1:6: expected ')' at end of expression, got end of line"},
			wantTree: "{}",
		},
		{
			name:   "one diagnostic per broken statement",
			input:  "let = 1\nlet y = (2\nlet z = 3\n",
			errors: []string{
				"1:4: expected variable name after 'let', got '='",
				"2:10: expected ')' at end of expression, got end of line",
			},
			wantTree: "{Let(y, <nil>); Let(z, 3)}",
		},
		{
			name:     "cascade inside a statement is suppressed",
			input:    "f(1 2 3 4)\n",
			errors:   []string{"1:4: expected ')' after arguments, got '2'"},
			wantTree: "{f(1)}",
		},
		{
			name:   "nested cascade is suppressed",
			input:  "let x = (1 +\n",
			errors: []string{"1:12: expected expression, got end of line"},
		},
		{
			name:     "missing colon skips the block and its else",
			input:    "if (a)\n\tb\nelse:\n\tc\nd\n",
			errors:   []string{"1:6: expected ':' after if condition, got end of line"},
			wantTree: "{If(a -> {}); d}",
		},
		{
			name:     "missing function name",
			input:    "func (a):\n\tb\n",
			errors:   []string{"1:5: expected function name after 'func', got '('"},
			wantTree: "{}",
		},
		{
			name:     "missing indented block",
			input:    "func f():\nx\n",
			errors:   []string{"2:0: expected indented block, got identifier 'x'"},
			wantTree: "{Func(f(), {})}",
		},
		{
			name:     "error inside a block recovers within the block",
			input:    "func f():\n\tlet = 1\n\treturn 2\n",
			errors:   []string{"2:8: expected variable name after 'let', got '='"},
			wantTree: "{Func(f(), {Return(2)})}",
		},
		{
			name:     "unexpected indentation",
			input:    "\tx\ny\n",
			errors:   []string{"1:0: expected expression, got indentation"},
			wantTree: "{y}",
		},
		{
			name:   "function definition inside a block",
			input:  "if (a):\n\tfunc f():\n\t\tx\n",
			errors: []string{"2:4: expected expression, got 'func'"},
		},
		{
			name:   "unterminated string from the scanner",
			input:  "let s = \"abc\n",
			errors: []string{"1:8: unterminated string"},
		},
		{
			name:   "unknown character from the scanner",
			input:  "let x = 1 % 2\n",
			errors: []string{"1:10: unknown character '%'"},
		},
		{
			name:     "inconsistent dedent from the scanner",
			input:    "if (a):\n\t\tb\n\tc\n",
			errors:   []string{"3:0: inconsistent dedent"},
			wantTree: "{If(a -> {b})}",
		},
		{
			name:   "misspelled func",
			input:  "fucn add(a, b):\n\treturn a\n",
			errors: []string{"1:5: expected end of line after statement, got identifier 'add' (did you mean 'func'?)"},
		},
		{
			name:   "misspelled return",
			input:  "func f(x):\n\tretrun x\n",
			errors: []string{"2:11: expected end of line after statement, got identifier 'x' (did you mean 'return'?)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse([]byte(tt.input))
			require.Error(t, err)
			require.NotNil(t, root, "partial tree must still be returned")

			var list ErrorList
			require.True(t, errors.As(err, &list), "error should be an ErrorList, got %T", err)

			var got []string
			for _, e := range list {
				got = append(got, e.Error())
			}
			assert.Equal(t, tt.errors, got)

			if tt.wantTree != "" {
				assert.Equal(t, tt.wantTree, root.String())
			}
		})
	}
}

func TestErrorListUnwrap(t *testing.T) {
	_, err := Parse([]byte("let = 5\nlet = 6\n"))
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Line)
	assert.Equal(t, 4, pe.Column)
	assert.Equal(t, lexer.EQUALS, pe.Got)
	assert.Empty(t, pe.Suggestion)

	assert.Equal(t,
		"1:4: expected variable name after 'let', got '='\n2:4: expected variable name after 'let', got '='",
		err.Error())
}

func TestDiagnosticsWriter(t *testing.T) {
	var buf bytes.Buffer
	_, err := Parse([]byte("let = 5\n"), WithDiagnostics(&buf))
	require.Error(t, err)
	assert.Equal(t, "1:4: expected variable name after 'let', got '='\n", buf.String())
}

func TestParserErrorsAccessor(t *testing.T) {
	p := New(lexer.NewScanner([]byte("x\n")))
	root, err := p.Parse()
	require.NoError(t, err)
	assert.Empty(t, p.Errors())
	assert.Equal(t, "{x}", root.String())
}

func TestSuggestKeyword(t *testing.T) {
	tests := []struct {
		word     string
		expected string
	}{
		{"fucn", "func"},
		{"retrun", "return"},
		{"esle", "else"},
		{"whiel", "while"},
		{"contine", "continue"},
		{"retur", "return"},
		{"cntnu", "continue"},
		{"lett", "let"},
		{"x", ""},
		{"total", ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, suggestKeyword(tt.word))
		})
	}
}
