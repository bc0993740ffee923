package fuzzy

import (
	"sort"
	"strings"
	"unicode"
)

// Weights tune the scoring of a match.
type Weights struct {
	Base        int // Starting score of any match
	Consecutive int // Per matched rune directly after the previous one
	WordStart   int // Per matched rune at the start of a word
	Prefix      int // When the first rune of the label matches
	ExactPrefix int // When the whole query is a prefix of the label
	Gap         int // Per unmatched rune between the first and last match
	Leading     int // Per rune before the first match
	ShortLabel  int // Labels shorter than this get the difference as bonus
}

// DefaultWeights returns the weights used by Rank.
func DefaultWeights() Weights {
	return Weights{
		Base:        100,
		Consecutive: 20,
		WordStart:   15,
		Prefix:      25,
		ExactPrefix: 50,
		Gap:         2,
		Leading:     1,
		ShortLabel:  20,
	}
}

// Result is one matched label.
type Result struct {
	// Index is the position of the label in the ranked slice.
	Index int
	Label string
	Score int
	// Matches holds the rune offsets of the matched runes.
	Matches []int
}

// Rank scores labels against query and returns the matches, best first.
// Ties keep the order of labels. An empty query matches nothing.
func Rank(query string, labels []string) []Result {
	return DefaultWeights().Rank(query, labels)
}

// Rank is like the package level Rank with custom weights.
func (w Weights) Rank(query string, labels []string) []Result {
	q := normalize(query)
	if len(q) == 0 {
		return nil
	}
	fold := !hasUpper(q)

	var out []Result
	for i, label := range labels {
		score, matches, ok := w.match(q, label, fold)
		if !ok {
			continue
		}
		out = append(out, Result{Index: i, Label: label, Score: score, Matches: matches})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Match scores a single label. ok is false when label does not contain the
// query runes in order.
func Match(query, label string) (score int, matches []int, ok bool) {
	q := normalize(query)
	if len(q) == 0 {
		return 0, nil, false
	}
	return DefaultWeights().match(q, label, !hasUpper(q))
}

func (w Weights) match(q []rune, label string, fold bool) (int, []int, bool) {
	orig := []rune(label)
	text := orig
	if fold {
		text = []rune(strings.ToLower(label))
	}
	if len(text) != len(orig) {
		// Lower casing changed the rune count; match on the original.
		text = orig
	}

	matches := make([]int, 0, len(q))
	for i := 0; i < len(text) && len(matches) < len(q); i++ {
		if text[i] == q[len(matches)] {
			matches = append(matches, i)
		}
	}
	if len(matches) != len(q) {
		return 0, nil, false
	}
	return w.score(q, orig, text, matches), matches, true
}

func (w Weights) score(q, orig, text []rune, matches []int) int {
	score := w.Base
	for i, m := range matches {
		if i > 0 && m == matches[i-1]+1 {
			score += w.Consecutive
		}
		if wordStart(orig, m) {
			score += w.WordStart
		}
	}
	first, last := matches[0], matches[len(matches)-1]
	if first == 0 {
		score += w.Prefix
	}
	if gap := last - first - len(matches) + 1; gap > 0 {
		score -= gap * w.Gap
	}
	score -= first * w.Leading
	if len(text) < w.ShortLabel {
		score += w.ShortLabel - len(text)
	}
	if len(text) >= len(q) && string(text[:len(q)]) == string(q) {
		score += w.ExactPrefix
	}
	return max(score, 1)
}

// wordStart reports whether the rune at i begins a word: the first rune,
// a rune after a space or punctuation, or an upper case rune after a lower
// case one.
func wordStart(r []rune, i int) bool {
	if i == 0 {
		return true
	}
	prev, cur := r[i-1], r[i]
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(cur)
}

func normalize(query string) []rune {
	return []rune(strings.TrimSpace(query))
}

func hasUpper(q []rune) bool {
	for _, r := range q {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
