package mnemonic

import (
	"fmt"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39/wordlists"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeList(t *testing.T, dir, name string, words []string) {
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(strings.Join(words, "\n")+"\n"), 0o600))
}

func syntheticWords(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%04d", prefix, i)
	}
	return out
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		lang Language
		err  bool
	}{
		{"", English, false},
		{"  ", English, false},
		{"english", English, false},
		{"Japanese", Japanese, false},
		{" KOREAN ", Korean, false},
		{"spanish", Spanish, false},
		{"chinese", Chinese, false},
		{"chinese_traditional", ChineseTraditional, false},
		{"french", French, false},
		{"italian", Italian, false},
		{"czech", Czech, false},
		{"portuguese", Portuguese, false},
		{"klingon", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lang, err := ParseLanguage(tt.in)
			if tt.err {
				require.ErrorIs(t, err, ErrUnknownLanguage)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.lang, lang)
		})
	}
}

func TestCatalogBuiltin(t *testing.T) {
	c := NewCatalog(t.TempDir())
	wl, err := c.Get(Korean)
	require.NoError(t, err)
	require.Equal(t, Korean, wl.Language())
	require.Equal(t, wordlists.Korean[0], wl.Word(0))

	idx, ok := wl.Index(wordlists.Korean[2047])
	require.True(t, ok)
	require.Equal(t, 2047, idx)

	again, err := c.Get(Korean)
	require.NoError(t, err)
	require.True(t, wl == again)
}

func TestCatalogPortuguese(t *testing.T) {
	dir := t.TempDir()
	c := NewCatalog(dir)

	_, err := c.Get(Portuguese)
	require.ErrorIs(t, err, ErrWordListUnavailable)

	writeList(t, dir, "portuguese.txt", syntheticWords("pt", WordListSize))
	wl, err := c.Get(Portuguese)
	require.NoError(t, err)
	require.Equal(t, "pt0000", wl.Word(0))

	words, err := Encode(make([]byte, 16), wl)
	require.NoError(t, err)
	require.Equal(t, "pt0003", words[11])
}

func TestCatalogOverride(t *testing.T) {
	dir := t.TempDir()
	writeList(t, dir, "english.txt", syntheticWords("en", WordListSize))

	wl, err := NewCatalog(dir).Get(English)
	require.NoError(t, err)
	require.Equal(t, "en0000", wl.Word(0))
}

func TestCatalogMalformedFile(t *testing.T) {
	tests := []struct {
		name  string
		words []string
	}{
		{"too short", syntheticWords("w", 2047)},
		{"too long", syntheticWords("w", 2049)},
		{"duplicates", append(syntheticWords("w", 2047), "w0000")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeList(t, dir, "portuguese.txt", tt.words)
			_, err := NewCatalog(dir).Get(Portuguese)
			require.ErrorIs(t, err, ErrWordListSize)
		})
	}
}

func TestSeparator(t *testing.T) {
	require.Equal(t, " ", English.Separator())
	require.Equal(t, "　", Japanese.Separator())
}
