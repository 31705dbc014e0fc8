package gcrypto

import (
	"crypto/sha256"
	"encoding/hex"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestHashText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in  string
		out string
	}{
		{"hello", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"olá, mundo", ""},
		{"The quick brown fox jumps over the lazy dog", "d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, err := HashText(tt.in)
			require.NoError(t, err)

			ref := sha256.Sum256([]byte(tt.in))
			require.Equal(t, hex.EncodeToString(ref[:]), h.String())
			if tt.out != "" {
				require.Equal(t, tt.out, h.String())
			}
			require.Len(t, h.String(), DigestLen)
			require.Equal(t, strings.ToLower(h.String()), h.String())

			again, err := HashText(tt.in)
			require.NoError(t, err)
			require.Equal(t, h, again)
		})
	}
}

func TestHashTextEmpty(t *testing.T) {
	_, err := HashText("")
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestValidateDigest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		valid bool
	}{
		{"empty", "", false},
		{"63 chars", strings.Repeat("a", 63), false},
		{"64 chars", strings.Repeat("a", 64), true},
		{"65 chars", strings.Repeat("a", 65), false},
		{"real digest", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", true},
		{"64 non-hex chars", strings.Repeat("z", 64), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.valid, ValidateDigest(tt.in))
		})
	}
}

func TestNormalizeDigest(t *testing.T) {
	require.Equal(t, "abcdef", NormalizeDigest("  ABCdef\n"))
}
