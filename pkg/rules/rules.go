package rules

import "unicode/utf8"

// Boundary marks the start or the end of a word. It is never a letter.
const Boundary rune = '_'

// Rule records one letter of a corpus word together with its neighbours.
// Left is Boundary for the first letter of a word and Right is Boundary for
// the last one. Center is always a letter.
type Rule struct {
	Left   rune
	Center rune
	Right  rune
}

// String renders the rule as a 3-character token, e.g. "_ca".
func (r Rule) String() string {
	return string([]rune{r.Left, r.Center, r.Right})
}

// IsStart reports whether the rule describes the first letter of a word.
func (r Rule) IsStart() bool {
	return r.Left == Boundary
}

// IsEnd reports whether the rule describes the last letter of a word.
func (r Rule) IsEnd() bool {
	return r.Right == Boundary
}

// Extract produces one rule per letter of every word, in word order then
// letter order. Duplicates are kept: they weight the random walk towards
// common transitions.
func Extract(words []string) []Rule {
	set := make([]Rule, 0, letterCount(words))
	for _, word := range words {
		letters := []rune(word)
		for i, c := range letters {
			rule := Rule{Left: Boundary, Center: c, Right: Boundary}
			if i > 0 {
				rule.Left = letters[i-1]
			}
			if i < len(letters)-1 {
				rule.Right = letters[i+1]
			}
			set = append(set, rule)
		}
	}
	return set
}

func letterCount(words []string) int {
	n := 0
	for _, w := range words {
		n += utf8.RuneCountInString(w)
	}
	return n
}
