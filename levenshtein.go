package movierec

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// EditScorer scores texts by their normalized edit distance:
// 1 - distance / length of the longest text, counted in runes. Two
// empty texts score 1, an empty and a non-empty text score 0.
type EditScorer struct{}

// Score returns the normalized Levenshtein similarity of query and
// candidate.
func (EditScorer) Score(query, candidate string) (float32, error) {
	queryLen := utf8.RuneCountInString(query)
	candLen := utf8.RuneCountInString(candidate)

	if queryLen == 0 && candLen == 0 {
		return 1, nil
	}
	if queryLen == 0 || candLen == 0 {
		return 0, nil
	}

	dist := levenshtein.ComputeDistance(query, candidate)

	return 1 - float32(dist)/float32(max(queryLen, candLen)), nil
}
