package quiz

import (
	"strings"
	"unicode/utf8"
)

const (
	// MinEssayLength is the minimum trimmed essay length accepted by Advance.
	MinEssayLength = 10

	// significantWordLength is the length a key-point word must exceed to count.
	significantWordLength = 3
)

// ScoreEssay scores an answer in [0, 1] by how many significant key-point words it contains.
//
// Each key point contributes matched/significant words when at least one word matches.
// A key point without significant words contributes nothing but still counts in the
// divisor, so it lowers the reachable maximum.
func ScoreEssay(answer string, keyPoints []string) float64 {
	if strings.TrimSpace(answer) == "" || len(keyPoints) == 0 {
		return 0
	}

	lowerAnswer := strings.ToLower(answer)

	var total float64
	for _, point := range keyPoints {
		words := significantWords(point)

		matched := 0
		for _, w := range words {
			if strings.Contains(lowerAnswer, w) {
				matched++
			}
		}

		if matched > 0 {
			total += float64(matched) / float64(len(words))
		}
	}

	return min(total/float64(len(keyPoints)), 1)
}

// significantWords splits a key point on single spaces and keeps lowercase words longer than three characters.
func significantWords(point string) []string {
	parts := strings.Split(strings.ToLower(point), " ")

	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if utf8.RuneCountInString(p) > significantWordLength {
			words = append(words, p)
		}
	}
	return words
}

// essayLongEnough reports whether text is long enough to be submitted.
func essayLongEnough(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) >= MinEssayLength
}
