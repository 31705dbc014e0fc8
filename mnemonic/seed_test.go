package mnemonic

import (
	"github.com/kurumiimari/bithub/testutil"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
	"strings"
	"testing"
)

func TestSeedVector(t *testing.T) {
	words := strings.Fields("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")

	seed := Seed(words, "TREZOR")
	testutil.RequireEqualHexBytes(
		t,
		"c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		seed,
	)

	key, err := MasterKey(seed)
	require.NoError(t, err)
	require.Equal(
		t,
		"xprv9s21ZrQH143K3h3fDYiay8mocZ3afhfULfb5GX8kCBdno77K4HiA15Tg23wpbeF1pLfs1c5SPmYHrEpTuuRhxMwvKDwqdKiGJS9XFKzUsAF",
		key.String(),
	)
	require.True(t, strings.HasPrefix(key.PublicKey().String(), "xpub"))
}

func TestSeedMatchesReference(t *testing.T) {
	phrase := "legal winner thank year wave sausage worth useful legal winner thank yellow"
	require.Equal(t, bip39.NewSeed(phrase, "pass"), Seed(strings.Fields(phrase), "pass"))
}

func TestSeedJapaneseSeparator(t *testing.T) {
	wl, err := NewCatalog("").Get(Japanese)
	require.NoError(t, err)
	words, err := Encode(make([]byte, 16), wl)
	require.NoError(t, err)

	joined := strings.Join(words, Japanese.Separator())
	require.Equal(t, Seed(words, ""), Seed(strings.Fields(joined), ""))
	require.Len(t, strings.Fields(joined), 12)
}
