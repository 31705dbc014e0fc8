package seed

import (
	"github.com/kurumiimari/bithub/gcrypto"
	"github.com/kurumiimari/bithub/log"
	"github.com/kurumiimari/bithub/mnemonic"
	"github.com/pkg/errors"
	"strings"
	"unicode/utf8"
)

var logger = log.ModuleLogger("seed")

type Config struct {
	Language  mnemonic.Language
	WordCount int
	Enumerate bool
}

type Result struct {
	Digest   string
	Entropy  string
	Language mnemonic.Language
	Words    []string
}

// Phrase joins the words with the language's separator.
func (r *Result) Phrase() string {
	return strings.Join(r.Words, r.Language.Separator())
}

type Deriver struct {
	catalog *mnemonic.Catalog
}

func NewDeriver(catalog *mnemonic.Catalog) *Deriver {
	return &Deriver{
		catalog: catalog,
	}
}

// Derive encodes the leading entropy of digest as a phrase. The same digest
// and config always yield the same words.
func (d *Deriver) Derive(digest string, cfg Config) (*Result, error) {
	if !gcrypto.ValidateDigest(digest) {
		return nil, errors.Wrapf(ErrInvalidDigest, "got %d characters", utf8.RuneCountInString(digest))
	}
	entropy, err := ExtractEntropy(digest, cfg.WordCount)
	if err != nil {
		return nil, err
	}
	list, err := d.catalog.Get(cfg.Language)
	if err != nil {
		return nil, err
	}
	words, err := mnemonic.EncodeHex(entropy, list)
	if err != nil {
		return nil, err
	}

	logger.Debug(
		"derived seed phrase",
		"language", cfg.Language,
		"words", len(words),
	)
	return &Result{
		Digest:   digest,
		Entropy:  entropy,
		Language: cfg.Language,
		Words:    words,
	}, nil
}
