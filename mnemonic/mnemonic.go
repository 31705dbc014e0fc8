// Package mnemonic encodes entropy as BIP39 word sequences.
package mnemonic

import (
	"encoding/hex"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"strings"
	"sync"
)

var (
	ErrEntropyLength  = errors.New("entropy must be 128 to 256 bits and a multiple of 32")
	ErrEntropyNotHex  = errors.New("entropy is not valid hexadecimal")
	ErrWordCount      = errors.New("mnemonic must have 12, 15, 18, 21 or 24 words")
	ErrUnknownWord    = errors.New("word is not in the word list")
	ErrChecksum       = errors.New("mnemonic checksum mismatch")
	ErrLanguageNeeded = errors.New("word list is required")
)

// go-bip39 keeps its word list in package state.
var bip39Mtx sync.Mutex

// withWordList runs fn with list selected in go-bip39 and restores the
// previous list afterwards.
func withWordList(list *WordList, fn func() error) error {
	bip39Mtx.Lock()
	defer bip39Mtx.Unlock()
	prev := bip39.GetWordList()
	bip39.SetWordList(list.words)
	defer bip39.SetWordList(prev)
	return fn()
}

func validEntropyBits(bits int) bool {
	return bits >= 128 && bits <= 256 && bits%32 == 0
}

// Encode maps entropy plus its checksum to words from list.
func Encode(entropy []byte, list *WordList) ([]string, error) {
	if list == nil {
		return nil, ErrLanguageNeeded
	}
	if bits := len(entropy) * 8; !validEntropyBits(bits) {
		return nil, errors.Wrapf(ErrEntropyLength, "got %d bits", bits)
	}

	var phrase string
	err := withWordList(list, func() error {
		var err error
		phrase, err = bip39.NewMnemonic(entropy)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "error encoding mnemonic")
	}
	return strings.Split(phrase, " "), nil
}

func EncodeHex(entropyHex string, list *WordList) ([]string, error) {
	entropy, err := hex.DecodeString(entropyHex)
	if err != nil {
		return nil, errors.Wrap(ErrEntropyNotHex, err.Error())
	}
	return Encode(entropy, list)
}

// Decode recovers the entropy behind words and verifies its checksum.
func Decode(words []string, list *WordList) ([]byte, error) {
	if list == nil {
		return nil, ErrLanguageNeeded
	}
	if n := len(words); n < 12 || n > 24 || n%3 != 0 {
		return nil, errors.Wrapf(ErrWordCount, "got %d", n)
	}
	for i, w := range words {
		if _, ok := list.Index(w); !ok {
			return nil, errors.Wrapf(ErrUnknownWord, "%q at position %d", w, i+1)
		}
	}

	var entropy []byte
	err := withWordList(list, func() error {
		var err error
		entropy, err = bip39.EntropyFromMnemonic(strings.Join(words, " "))
		return err
	})
	if errors.Is(err, bip39.ErrChecksumIncorrect) {
		return nil, ErrChecksum
	}
	if err != nil {
		return nil, errors.Wrap(err, "error decoding mnemonic")
	}
	return entropy, nil
}
