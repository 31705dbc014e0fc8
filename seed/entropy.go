// Package seed turns text, pasted digests and text files into deterministic
// BIP39 seed phrases.
package seed

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidWordCount = errors.New("word count must be 12 or 24")
	ErrDigestTooShort   = errors.New("digest is too short for the requested entropy")
)

// EntropyBits maps a phrase length to the entropy it encodes.
func EntropyBits(wordCount int) (int, error) {
	switch wordCount {
	case 12:
		return 128, nil
	case 24:
		return 256, nil
	default:
		return 0, errors.Wrapf(ErrInvalidWordCount, "got %d", wordCount)
	}
}

// ExtractEntropy returns the leading hex characters of digest that carry the
// entropy for wordCount words.
func ExtractEntropy(digest string, wordCount int) (string, error) {
	bits, err := EntropyBits(wordCount)
	if err != nil {
		return "", err
	}
	n := bits / 4
	if len(digest) < n {
		return "", errors.Wrapf(ErrDigestTooShort, "need %d characters, got %d", n, len(digest))
	}
	return digest[:n], nil
}
