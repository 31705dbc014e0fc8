package gcrypto

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestShannonEntropy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		value float64
		grade EntropyGrade
	}{
		{"", 0, EntropyLow},
		{"aaaa", 0, EntropyLow},
		{"ab", 1, EntropyLow},
		{"abcd", 2, EntropyLow},
		{"abcdefgh", 3, EntropyMedium},
		{"0123456789abcdef", 4, EntropyHigh},
		{"ãõçé", 2, EntropyLow},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := ShannonEntropy(tt.in)
			require.InDelta(t, tt.value, v, 1e-9)
			require.Equal(t, tt.grade, GradeEntropy(v))
		})
	}
}

func TestGradeEntropyBoundaries(t *testing.T) {
	require.Equal(t, EntropyLow, GradeEntropy(2.999))
	require.Equal(t, EntropyMedium, GradeEntropy(3.0))
	require.Equal(t, EntropyMedium, GradeEntropy(3.999))
	require.Equal(t, EntropyHigh, GradeEntropy(4.0))
}
