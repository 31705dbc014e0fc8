package seed

import (
	"fmt"
	"github.com/pkg/errors"
	"os"
	"path/filepath"
	"strings"
)

// Format lists one word per line, numbered from 1 when enumerate is set.
func Format(words []string, enumerate bool) string {
	if !enumerate {
		return strings.Join(words, "\n")
	}
	lines := make([]string, len(words))
	for i, w := range words {
		lines[i] = fmt.Sprintf("%d. %s", i+1, w)
	}
	return strings.Join(lines, "\n")
}

// Persist overwrites path with the plain word list.
func Persist(words []string, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(err, "error creating output directory")
	}
	if err := os.WriteFile(path, []byte(Format(words, false)), 0600); err != nil {
		return errors.Wrap(err, "error writing seed file")
	}
	return nil
}

func DefaultOutputPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "error finding home directory")
	}
	return filepath.Join(home, "Documents", "seed_bip39.txt"), nil
}
