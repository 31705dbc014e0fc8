package gcrypto

import (
	"crypto/sha256"
	"encoding/hex"
	"github.com/pkg/errors"
	"strings"
	"unicode/utf8"
)

// DigestLen is the length of a hex-encoded SHA-256 digest.
const DigestLen = sha256.Size * 2

var ErrEmptyInput = errors.New("input must not be empty")

type Hash []byte

func (h Hash) String() string {
	return hex.EncodeToString(h)
}

func SHA256(in []byte) Hash {
	buf := sha256.Sum256(in)
	return buf[:]
}

// HashText returns the SHA-256 of the UTF-8 bytes of text.
func HashText(text string) (Hash, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}
	return SHA256([]byte(text)), nil
}

// ValidateDigest only checks the length of a pasted digest. The character set
// is checked when the entropy is decoded.
func ValidateDigest(s string) bool {
	return utf8.RuneCountInString(s) == DigestLen
}

func NormalizeDigest(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
