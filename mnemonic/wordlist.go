package mnemonic

import (
	"bufio"
	"github.com/pkg/errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// WordListSize is the number of words in every BIP39 list.
const WordListSize = 2048

var (
	ErrWordListUnavailable = errors.New("no word list available for language")
	ErrWordListSize        = errors.New("word list must contain 2048 unique words")
)

type WordList struct {
	lang  Language
	words []string
	index map[string]int
}

func NewWordList(lang Language, words []string) (*WordList, error) {
	if len(words) != WordListSize {
		return nil, errors.Wrapf(ErrWordListSize, "%s has %d words", lang, len(words))
	}
	index := make(map[string]int, len(words))
	for i, w := range words {
		if w == "" {
			return nil, errors.Wrapf(ErrWordListSize, "%s has an empty word at line %d", lang, i+1)
		}
		if _, dup := index[w]; dup {
			return nil, errors.Wrapf(ErrWordListSize, "%s repeats %q", lang, w)
		}
		index[w] = i
	}
	return &WordList{
		lang:  lang,
		words: words,
		index: index,
	}, nil
}

func (w *WordList) Language() Language {
	return w.lang
}

func (w *WordList) Word(i int) string {
	return w.words[i]
}

func (w *WordList) Index(word string) (int, bool) {
	i, ok := w.index[word]
	return i, ok
}

// Catalog resolves word lists by language. Files named <language>.txt in dir
// take precedence over the lists compiled into go-bip39, and are the only
// source for languages go-bip39 does not ship.
type Catalog struct {
	dir   string
	lists map[Language]*WordList
	mtx   sync.Mutex
}

func NewCatalog(dir string) *Catalog {
	return &Catalog{
		dir:   dir,
		lists: make(map[Language]*WordList),
	}
}

func (c *Catalog) Get(lang Language) (*WordList, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if wl, ok := c.lists[lang]; ok {
		return wl, nil
	}

	words, err := c.load(lang)
	if err != nil {
		return nil, err
	}
	wl, err := NewWordList(lang, words)
	if err != nil {
		return nil, err
	}
	c.lists[lang] = wl
	return wl, nil
}

func (c *Catalog) load(lang Language) ([]string, error) {
	if c.dir != "" {
		words, err := ReadWordListFile(filepath.Join(c.dir, string(lang)+".txt"))
		if err == nil {
			return words, nil
		}
		if !os.IsNotExist(errors.Cause(err)) {
			return nil, err
		}
	}

	words, ok := builtinLists[lang]
	if !ok {
		return nil, errors.Wrapf(ErrWordListUnavailable, "%s (place %s.txt in %s)", lang, lang, c.dir)
	}
	return words, nil
}

// ReadWordListFile reads one word per line, ignoring blank lines.
func ReadWordListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "error reading word list %s", path)
	}
	return words, nil
}
