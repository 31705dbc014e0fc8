package mnemonic

import (
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39/wordlists"
	"strings"
)

type Language string

const (
	English            Language = "english"
	Japanese           Language = "japanese"
	Korean             Language = "korean"
	Spanish            Language = "spanish"
	Chinese            Language = "chinese"
	ChineseTraditional Language = "chinese_traditional"
	French             Language = "french"
	Italian            Language = "italian"
	Czech              Language = "czech"
	Portuguese         Language = "portuguese"
)

const DefaultLanguage = English

// Languages lists the selectable languages in prompt order.
var Languages = []Language{
	English,
	Japanese,
	Korean,
	Spanish,
	Chinese,
	French,
	Italian,
	Czech,
	Portuguese,
}

var ErrUnknownLanguage = errors.New("unknown language")

var builtinLists = map[Language][]string{
	English:            wordlists.English,
	Japanese:           wordlists.Japanese,
	Korean:             wordlists.Korean,
	Spanish:            wordlists.Spanish,
	Chinese:            wordlists.ChineseSimplified,
	ChineseTraditional: wordlists.ChineseTraditional,
	French:             wordlists.French,
	Italian:            wordlists.Italian,
	Czech:              wordlists.Czech,
}

// ParseLanguage maps user input to a Language. Empty input selects English.
func ParseLanguage(in string) (Language, error) {
	name := strings.ToLower(strings.TrimSpace(in))
	if name == "" {
		return DefaultLanguage, nil
	}
	lang := Language(name)
	if lang == ChineseTraditional {
		return lang, nil
	}
	for _, l := range Languages {
		if l == lang {
			return lang, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownLanguage, "%q", in)
}

func (l Language) String() string {
	return string(l)
}

// Separator is the string used between words when a phrase is written on one
// line.
func (l Language) Separator() string {
	if l == Japanese {
		return "　"
	}
	return " "
}
