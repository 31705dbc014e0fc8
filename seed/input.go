package seed

import (
	"github.com/kurumiimari/bithub/gcrypto"
	"github.com/pkg/errors"
	"os"
	"strings"
	"unicode/utf8"
)

type InputMode string

const (
	ModeString InputMode = "string"
	ModeHash   InputMode = "hash"
	ModeFile   InputMode = "file"
)

const textFileExt = ".txt"

var (
	ErrInvalidMode   = errors.New("invalid input mode")
	ErrInvalidDigest = errors.New("digest must be exactly 64 characters long")
	ErrInvalidFile   = errors.New("invalid file path or file format")
)

// ParseInputMode treats an empty answer as ModeString.
func ParseInputMode(in string) (InputMode, error) {
	switch mode := InputMode(strings.ToLower(strings.TrimSpace(in))); mode {
	case "", ModeString:
		return ModeString, nil
	case ModeHash, ModeFile:
		return mode, nil
	default:
		return "", errors.Wrapf(ErrInvalidMode, "%q", in)
	}
}

// Input is a digest ready for derivation together with the entropy report
// of whatever it came from.
type Input struct {
	Mode    InputMode
	Digest  string
	Entropy float64
	Grade   gcrypto.EntropyGrade
}

func FromText(text string) (*Input, error) {
	h, err := gcrypto.HashText(text)
	if err != nil {
		return nil, err
	}
	return newInput(ModeString, h.String(), text), nil
}

// FromDigest accepts a pasted digest. Only its length is checked here.
func FromDigest(digest string) (*Input, error) {
	digest = gcrypto.NormalizeDigest(digest)
	if !gcrypto.ValidateDigest(digest) {
		return nil, errors.Wrapf(ErrInvalidDigest, "got %d characters", utf8.RuneCountInString(digest))
	}
	return newInput(ModeHash, digest, digest), nil
}

func FromFile(path string) (*Input, error) {
	text, err := ReadTextFile(path)
	if err != nil {
		return nil, err
	}
	h, err := gcrypto.HashText(text)
	if err != nil {
		return nil, errors.Wrapf(err, "file %s", path)
	}
	return newInput(ModeFile, h.String(), text), nil
}

// ReadTextFile reads an existing regular .txt file as UTF-8 and trims
// surrounding whitespace.
func ReadTextFile(path string) (string, error) {
	if !strings.HasSuffix(path, textFileExt) {
		return "", errors.Wrapf(ErrInvalidFile, "%s is not a %s file", path, textFileExt)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrap(ErrInvalidFile, err.Error())
	}
	if !info.Mode().IsRegular() {
		return "", errors.Wrapf(ErrInvalidFile, "%s is not a regular file", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(ErrInvalidFile, err.Error())
	}
	if !utf8.Valid(b) {
		return "", errors.Wrapf(ErrInvalidFile, "%s is not UTF-8", path)
	}
	return strings.TrimSpace(string(b)), nil
}

func newInput(mode InputMode, digest string, source string) *Input {
	e := gcrypto.ShannonEntropy(source)
	return &Input{
		Mode:    mode,
		Digest:  digest,
		Entropy: e,
		Grade:   gcrypto.GradeEntropy(e),
	}
}
