package gcrypto

import "math"

type EntropyGrade string

const (
	EntropyLow    EntropyGrade = "Low"
	EntropyMedium EntropyGrade = "Medium"
	EntropyHigh   EntropyGrade = "High"
)

// ShannonEntropy returns the entropy of the character distribution of s in
// bits per character.
func ShannonEntropy(s string) float64 {
	counts := make(map[rune]int)
	total := 0
	for _, r := range s {
		counts[r]++
		total++
	}
	if total == 0 {
		return 0
	}

	var entropy float64
	for _, c := range counts {
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

func GradeEntropy(v float64) EntropyGrade {
	switch {
	case v < 3.0:
		return EntropyLow
	case v < 4.0:
		return EntropyMedium
	default:
		return EntropyHigh
	}
}
