package record

import (
	"regexp"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Scores holds the three independent similarity ratios, each in [0,1].
type Scores struct {
	Char         float64
	Line         float64
	TokenJaccard float64
}

var tokenRE = regexp.MustCompile(`\w+`)

// Similarity computes character-level, line-level, and token-level
// similarity between two texts.
//
// The character and line scores come from sequence alignment over,
// respectively, the texts as rune sequences and as line sequences, with
// the autojunk heuristic enabled. The token score is Jaccard overlap of
// the unique lowercase word tokens on each side; two empty token sets
// compare as identical (1.0).
func Similarity(a, b string) Scores {
	return Scores{
		Char:         difflib.NewMatcher(explode(a), explode(b)).Ratio(),
		Line:         difflib.NewMatcher(splitRawLines(a), splitRawLines(b)).Ratio(),
		TokenJaccard: tokenJaccard(a, b),
	}
}

func tokenJaccard(a, b string) float64 {
	ta := tokenSet(a)
	tb := tokenSet(b)
	if len(ta) == 0 && len(tb) == 0 {
		return 1.0
	}
	inter := 0
	union := len(tb)
	for tok := range ta {
		if tb[tok] {
			inter++
		} else {
			union++
		}
	}
	return float64(inter) / float64(union)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range tokenRE.FindAllString(strings.ToLower(s), -1) {
		set[tok] = true
	}
	return set
}

// explode splits s into per-rune elements for character-level matching.
func explode(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
