package parser

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/nitro-lang/nitro/pkgs/lexer"
)

// maxSuggestDistance is the largest edit distance still worth a hint
const maxSuggestDistance = 2

var keywordNames = func() []string {
	names := make([]string, 0, len(lexer.Keywords))
	for name := range lexer.Keywords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// suggestKeyword returns the keyword closest to word, or "" when nothing is
// close enough. Short words are skipped since almost everything is near them.
func suggestKeyword(word string) string {
	if len(word) < 3 {
		return ""
	}

	best, bestDistance := "", maxSuggestDistance+1
	for _, keyword := range keywordNames {
		if d := fuzzy.LevenshteinDistance(word, keyword); d < bestDistance {
			best, bestDistance = keyword, d
		}
	}

	// Prefixes like "ret" for "return" are too far by edit distance
	if best == "" {
		if ranks := fuzzy.RankFindFold(word, keywordNames); len(ranks) > 0 {
			sort.Sort(ranks)
			if ranks[0].Distance <= len(word) {
				best = ranks[0].Target
			}
		}
	}

	return best
}
