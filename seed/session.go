package seed

import (
	"context"
	"github.com/kurumiimari/bithub/mnemonic"
	"github.com/kurumiimari/bithub/prompt"
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

const backupBanner = "------ BACKUP Bitcoin Seed Phrase! ------"

// Session runs the interactive seed generator until the user declines to
// generate another phrase, input ends or the context is canceled.
type Session struct {
	prompter *prompt.Prompter
	deriver  *Deriver
	output   string
	defaults Config
}

// NewSession saves phrases to output. Only the language and enumeration of
// defaults are used; the word count is always asked.
func NewSession(p *prompt.Prompter, deriver *Deriver, output string, defaults Config) *Session {
	if defaults.Language == "" {
		defaults.Language = mnemonic.DefaultLanguage
	}
	return &Session{
		prompter: p,
		deriver:  deriver,
		output:   output,
		defaults: defaults,
	}
}

func (s *Session) Run(ctx context.Context) error {
	for {
		again, err := s.round(ctx)
		if prompt.IsExit(err) {
			s.prompter.Println("\n\nExiting the seed generation program...")
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			s.prompter.Println("\nExiting the seed generation program...")
			return nil
		}
	}
}

// round runs one pass of the loop. Input problems are reported and yield
// (true, nil) so the loop starts over.
func (s *Session) round(ctx context.Context) (bool, error) {
	p := s.prompter

	ans, err := p.Ask(ctx, "\n1) Provide a SHA-256 HASH, a STRING or a TEXT FILE to generate the hash?\n"+
		"(Press Enter for 'string', or type 'hash' or type 'file'[.txt]): ")
	if err != nil {
		return false, err
	}
	mode, err := ParseInputMode(ans)
	if err != nil {
		p.Errorf("Invalid choice. Please type 'string', 'hash', or 'file'.")
		return true, nil
	}

	in, err := s.acquire(ctx, mode)
	if err != nil {
		return false, err
	}
	if in == nil {
		p.Println("*Hash not generated. Please try again.")
		return true, nil
	}

	ans, err = p.Ask(ctx, s.languageQuestion())
	if err != nil {
		return false, err
	}
	lang := s.defaults.Language
	if ans != "" {
		lang, err = mnemonic.ParseLanguage(ans)
		if err != nil {
			p.Errorf("Invalid language. Please enter a valid language from the list.\n")
			return true, nil
		}
	}

	count, err := s.askWordCount(ctx)
	if err != nil {
		return false, err
	}

	cfg := Config{
		Language:  lang,
		WordCount: count,
		Enumerate: s.defaults.Enumerate,
	}
	res, err := s.deriver.Derive(in.Digest, cfg)
	if err != nil {
		if !isInputError(err) {
			logger.Warning("error deriving seed", "language", lang, "err", err)
		}
		p.Errorf("%v", err)
		return true, nil
	}

	p.Println()
	p.Boldf(backupBanner)
	p.Boldf(backupBanner)
	if cfg.Enumerate {
		p.Printf("\n%s\n\n", Format(res.Words, true))
	} else {
		p.Printf("\n%s\n\n", res.Phrase())
	}

	save, err := p.Confirm(ctx, "Would you like to save the seed to a file? (y/n): ")
	if err != nil {
		return false, err
	}
	if save {
		if err := Persist(res.Words, s.output); err != nil {
			logger.Error("error saving seed", "path", s.output, "err", err)
			p.Errorf("Failed to save the seed to a file.\n %v", err)
		} else {
			p.Boldf("*Seed successfully saved to '%s'\n", s.output)
		}
	} else {
		p.Boldf("*Seed not saved.\n")
	}

	return p.Confirm(ctx, "Would you like to generate another seed? (y/n): ")
}

// acquire returns a nil Input after reporting an input problem.
func (s *Session) acquire(ctx context.Context, mode InputMode) (*Input, error) {
	p := s.prompter

	switch mode {
	case ModeHash:
		ans, err := p.Ask(ctx, "2) Enter the SHA-256 hash (64 characters): ")
		if err != nil {
			return nil, err
		}
		in, err := FromDigest(ans)
		if err != nil {
			p.Errorf("The provided hash must be exactly 64 characters long. Please enter a valid SHA-256 hash.")
			return nil, nil
		}
		p.Boldf("\n=> Entropy of hash: %.2f (%s)\n", in.Entropy, in.Grade)
		return in, nil
	case ModeFile:
		ans, err := p.Ask(ctx, "\n2) Enter the path to the text file (.txt): ")
		if err != nil {
			return nil, err
		}
		in, err := FromFile(ans)
		if err != nil {
			logger.Debug("rejected input file", "path", ans, "err", err)
			p.Errorf("Invalid file path or file format. Please enter a valid .txt file path.")
			return nil, nil
		}
		p.Boldf("\n=> Generated SHA-256 hash from file: %s", in.Digest)
		p.Boldf("\n=> Entropy of text / Hash: %.2f (%s)\n", in.Entropy, in.Grade)
		return in, nil
	default:
		ans, err := p.Ask(ctx, "\n2) Enter the string to generate the SHA-256 hash: ")
		if err != nil {
			return nil, err
		}
		in, err := FromText(ans)
		if err != nil {
			p.Errorf("You must provide a non-empty string.")
			return nil, nil
		}
		p.Boldf("\n=> Generated SHA-256 hash: %s", in.Digest)
		p.Boldf("\n=> Entropy of input: %.2f (%s)\n", in.Entropy, in.Grade)
		return in, nil
	}
}

func (s *Session) askWordCount(ctx context.Context) (int, error) {
	for {
		ans, err := s.prompter.Ask(ctx, "\n4) How many words would you like for the seed? (12 or 24): ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(ans)
		if err == nil {
			if _, err := EntropyBits(n); err == nil {
				return n, nil
			}
		}
		s.prompter.Errorf("Please enter a valid number (12 or 24).")
	}
}

func (s *Session) languageQuestion() string {
	var others []string
	for _, l := range mnemonic.Languages {
		if l != s.defaults.Language {
			others = append(others, l.String())
		}
	}
	return "3) Enter the desired language for the seed\n" +
		"(Press Enter for '" + s.defaults.Language.String() + "' or type " +
		strings.Join(others[:len(others)-1], ", ") + " or " + others[len(others)-1] + "): "
}

func isInputError(err error) bool {
	for _, target := range []error{
		ErrInvalidDigest,
		ErrDigestTooShort,
		ErrInvalidWordCount,
		mnemonic.ErrEntropyNotHex,
		mnemonic.ErrUnknownLanguage,
		mnemonic.ErrWordListUnavailable,
		mnemonic.ErrWordListSize,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
