package gjson

import (
	"encoding/json"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestFloatJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		out  float64
		err  bool
	}{
		{"number", "652341.5", 652341.5, false},
		{"integer", "42", 42, false},
		{"numeric string", "\"5.1234\"", 5.1234, false},
		{"padded string", "\" 7.5 \"", 7.5, false},
		{"empty string", "\"\"", 0, true},
		{"text", "\"n/a\"", 0, true},
		{"null", "null", 0, true},
		{"object", "{}", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Float
			err := json.Unmarshal([]byte(tt.in), &f)
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.InDelta(t, tt.out, float64(f), 1e-9)
		})
	}
}
