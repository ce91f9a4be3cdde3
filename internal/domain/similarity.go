package domain

import (
	"math"

	"github.com/agnivade/levenshtein"
)

// SimilarityRatio computes a 0-100 similarity between two answers after
// normalization, using the Levenshtein ratio 100*(1 - distance/maxLen) over
// rune counts. Two empty strings are identical and score 100.
func SimilarityRatio(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)

	if na == nb {
		return 100
	}

	lenA := len([]rune(na))
	lenB := len([]rune(nb))
	maxLen := lenA
	if lenB > maxLen {
		maxLen = lenB
	}

	distance := levenshtein.ComputeDistance(na, nb)
	return 100 * (1 - float64(distance)/float64(maxLen))
}

// ScoreOutOfTen maps the similarity ratio to the 0-10 scale used in
// comparison results. Rounding is to nearest with ties away from zero
// (math.Round), so a ratio of 75 scores 8.
func ScoreOutOfTen(userAnswer, referenceAnswer string) int {
	return int(math.Round(SimilarityRatio(userAnswer, referenceAnswer) / 10))
}
