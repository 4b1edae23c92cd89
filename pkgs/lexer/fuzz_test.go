package lexer

import "testing"

// FuzzScannerTotal checks that every input terminates with EOF within a
// bounded number of tokens and that INDENT and DEDENT always balance.
func FuzzScannerTotal(f *testing.F) {
	for _, src := range wellFormedSources {
		f.Add([]byte(src))
	}
	f.Add([]byte("\"abc"))
	f.Add([]byte("'"))
	f.Add([]byte("a\n\t\t\tb\n\tc\n\t\td"))
	f.Add([]byte{0, 0xff, '\t', '\n', '#'})

	f.Fuzz(func(t *testing.T, src []byte) {
		scanner := NewScanner(src)

		// Every token either consumes input or is bounded by the line count
		limit := 4*len(src) + 8
		balance := 0
		for i := 0; ; i++ {
			if i > limit {
				t.Fatalf("no EOF after %d tokens for %q", limit, src)
			}

			tok := scanner.Next()
			switch tok.Type {
			case INDENT:
				balance++
			case DEDENT:
				balance--
			}
			if balance < 0 {
				t.Fatalf("indent balance went negative for %q", src)
			}
			if tok.Type == EOF {
				break
			}
		}

		if balance != 0 {
			t.Fatalf("indent balance %d at EOF for %q", balance, src)
		}
		if tok := scanner.Next(); tok.Type != EOF {
			t.Fatalf("expected EOF to repeat, got %v", tok.Type)
		}
	})
}
