package service

import (
	"strings"
)

// normalize prepares user input for comparison: lowercase, trimmed,
// single-spaced and with Arabic diacritics removed.
func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	s = normalizeArabic(s)
	return strings.Join(strings.Fields(s), " ")
}

// similarity returns 1 minus the Levenshtein distance relative to the longer string.
func similarity(s1, s2 string) float64 {
	distance := levenshteinDistance(s1, s2)
	maxLen := max(len([]rune(s1)), len([]rune(s2)))

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// normalizeArabic removes diacritics and tatweel and folds common letter variants.
func normalizeArabic(s string) string {
	s = strings.Map(func(r rune) rune {
		// Harakat: U+064B to U+065F, superscript alef: U+0670
		if (r >= 0x064B && r <= 0x065F) || r == 0x0670 {
			return -1
		}
		// Tatweel (kashida): U+0640
		if r == 0x0640 {
			return -1
		}
		return r
	}, s)

	replacements := map[rune]rune{
		'أ': 'ا', // Alef with hamza above
		'إ': 'ا', // Alef with hamza below
		'آ': 'ا', // Alef with madda
		'ٱ': 'ا', // Alef wasla
	}

	return strings.Map(func(r rune) rune {
		if normalized, ok := replacements[r]; ok {
			return normalized
		}
		return r
	}, s)
}

// levenshteinDistance calculates the Levenshtein distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	rows := len(r1) + 1
	cols := len(r2) + 1

	// Two rows instead of the full matrix.
	prev := make([]int, cols)
	curr := make([]int, cols)

	for j := 0; j < cols; j++ {
		prev[j] = j
	}

	for i := 1; i < rows; i++ {
		curr[0] = i

		for j := 1; j < cols; j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}

			curr[j] = min(
				curr[j-1]+1,    // Insertion
				prev[j]+1,      // Deletion
				prev[j-1]+cost, // Substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[cols-1]
}
