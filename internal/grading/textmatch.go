package grading

import (
	"strings"
	"unicode"
)

// normalize casefolds, drops punctuation and collapses whitespace.
func normalize(s string) string {
	folded := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
	return strings.Join(strings.Fields(folded), " ")
}

// withinEdits reports whether a and b are at most limit edits apart. It stops
// as soon as every cell of a row exceeds limit.
func withinEdits(a, b string, limit int) bool {
	ar, br := []rune(a), []rune(b)
	if d := len(ar) - len(br); d > limit || -d > limit {
		return false
	}
	row := make([]int, len(br)+1)
	for j := range row {
		row[j] = j
	}
	for i, ra := range ar {
		diag := row[0]
		row[0] = i + 1
		best := row[0]
		for j, rb := range br {
			cost := 1
			if ra == rb {
				cost = 0
			}
			next := min(row[j+1]+1, row[j]+1, diag+cost)
			diag, row[j+1] = row[j+1], next
			best = min(best, next)
		}
		if best > limit {
			return false
		}
	}
	return row[len(br)] <= limit
}
