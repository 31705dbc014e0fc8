package mnemonic

import (
	"crypto/sha512"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
	"strings"
)

const (
	SeedSize       = 64
	seedIterations = 2048
)

// Seed derives the 512-bit BIP39 seed. Phrase and passphrase are NFKD
// normalized, so Japanese phrases joined with an ideographic space produce the
// same seed as ones joined with a plain space.
func Seed(words []string, passphrase string) []byte {
	phrase := norm.NFKD.String(strings.Join(words, " "))
	salt := norm.NFKD.String("mnemonic" + passphrase)
	return pbkdf2.Key([]byte(phrase), []byte(salt), seedIterations, SeedSize, sha512.New)
}

func MasterKey(seed []byte) (*bip32.Key, error) {
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "error deriving master key")
	}
	return key, nil
}
