package seed

import (
	"encoding/hex"
	"github.com/kurumiimari/bithub/mnemonic"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
	"strings"
	"testing"
)

func referencePhrase(t *testing.T, entropyHex string) []string {
	entropy, err := hex.DecodeString(entropyHex)
	require.NoError(t, err)
	phrase, err := bip39.NewMnemonic(entropy)
	require.NoError(t, err)
	return strings.Fields(phrase)
}

func TestDeriver_Derive(t *testing.T) {
	d := NewDeriver(mnemonic.NewCatalog(t.TempDir()))

	res, err := d.Derive(helloDigest, Config{Language: mnemonic.English, WordCount: 12})
	require.NoError(t, err)
	require.Equal(t, helloDigest[:32], res.Entropy)
	require.Equal(t, referencePhrase(t, helloDigest[:32]), res.Words)
	require.Equal(t, strings.Join(res.Words, " "), res.Phrase())

	again, err := d.Derive(helloDigest, Config{Language: mnemonic.English, WordCount: 12})
	require.NoError(t, err)
	require.Equal(t, res.Words, again.Words)

	long, err := d.Derive(helloDigest, Config{Language: mnemonic.English, WordCount: 24})
	require.NoError(t, err)
	require.Len(t, long.Words, 24)
	require.Equal(t, referencePhrase(t, helloDigest), long.Words)

	jp, err := d.Derive(helloDigest, Config{Language: mnemonic.Japanese, WordCount: 12})
	require.NoError(t, err)
	require.Len(t, jp.Words, 12)
	require.NotEqual(t, res.Words, jp.Words)
	require.Equal(t, 11, strings.Count(jp.Phrase(), "　"))
}

func TestDeriver_DeriveErrors(t *testing.T) {
	d := NewDeriver(mnemonic.NewCatalog(t.TempDir()))

	tests := []struct {
		name   string
		digest string
		cfg    Config
		err    error
	}{
		{
			"short digest",
			helloDigest[:63],
			Config{Language: mnemonic.English, WordCount: 12},
			ErrInvalidDigest,
		},
		{
			"non-hex digest",
			strings.Repeat("g", 64),
			Config{Language: mnemonic.English, WordCount: 12},
			mnemonic.ErrEntropyNotHex,
		},
		{
			"bad word count",
			helloDigest,
			Config{Language: mnemonic.English, WordCount: 7},
			ErrInvalidWordCount,
		},
		{
			"missing word list",
			helloDigest,
			Config{Language: mnemonic.Portuguese, WordCount: 12},
			mnemonic.ErrWordListUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Derive(tt.digest, tt.cfg)
			require.ErrorIs(t, err, tt.err)
			require.True(t, isInputError(err))
		})
	}
}
