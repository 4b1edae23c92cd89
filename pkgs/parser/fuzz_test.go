package parser

import (
	"testing"
)

// FuzzParse checks that any input parses to a tree without panicking, and
// that a failed parse always carries at least one diagnostic.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"let x = 1\n",
		"func add(a, b):\n\treturn a + b\n",
		"if (a):\n\tif (b):\n\t\tx\ny\n",
		"if (a):\n\tx\nelse if (b):\n\ty\nelse:\n\tz\n",
		"f(1,\n\t2)\n",
		"let = 5\n",
		"(((\n",
		"\t\tx\n\ty\nz\n",
		"let s = \"abc\n",
		"fucn f(:\n\t)\n",
		"if (a)\n\tb\nelse:\n\tc\n",
		"2 ** -3 ** ~!x\n",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		root, err := Parse([]byte(input))
		if root == nil {
			t.Fatalf("nil root for %q", input)
		}
		if err != nil {
			list, ok := err.(ErrorList)
			if !ok || len(list) == 0 {
				t.Fatalf("error without diagnostics for %q: %v", input, err)
			}
		}
	})
}
