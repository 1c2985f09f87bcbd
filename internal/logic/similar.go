// Package logic holds small pure helpers shared by the shell.
package logic

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// ClosestItem returns the existing item most similar to the typed text,
// so the entry field can warn about near duplicates while the user is
// still typing. The bool is false when nothing is close enough.
//
// Comparison ignores case and surrounding whitespace. Very short input
// is never matched; one or two letters are too ambiguous to be worth a
// hint.
func ClosestItem(typed string, items []string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(typed))
	if len(needle) < 3 {
		return "", false
	}

	best := ""
	bestDist := -1
	for _, item := range items {
		candidate := strings.ToLower(strings.TrimSpace(item))
		dist := levenshtein.ComputeDistance(needle, candidate)
		if bestDist == -1 || dist < bestDist {
			best, bestDist = item, dist
		}
	}
	if bestDist == -1 || bestDist > maxDistance(needle) {
		return "", false
	}
	return best, true
}

// maxDistance scales the edit distance cutoff with input length: short
// words must match almost exactly, longer ones get more slack. One
// third of the length keeps a swapped-letter typo inside the cutoff.
func maxDistance(needle string) int {
	return (len(needle) + 2) / 3
}
