package cmd

import (
	"context"
	"encoding/hex"
	"github.com/kurumiimari/bithub"
	"github.com/kurumiimari/bithub/mnemonic"
	"github.com/kurumiimari/bithub/prompt"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"strings"
)

var verifyLanguage string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Checks a seed phrase and shows its BIP39 seed and root public key",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConsole(cmd, runVerify)
	},
}

func runVerify(ctx context.Context, c *console) error {
	p := c.prompter

	langName := verifyLanguage
	if langName == "" {
		langName = bithub.Config.Settings.Seed.Language
	}
	lang, err := mnemonic.ParseLanguage(langName)
	if err != nil {
		return err
	}
	list, err := mnemonic.NewCatalog(dataDir.WordlistDir()).Get(lang)
	if err != nil {
		return err
	}

	phrase, err := p.Ask(ctx, "Enter the seed phrase: ")
	if prompt.IsExit(err) {
		return nil
	}
	if err != nil {
		return err
	}
	words := strings.Fields(phrase)
	if _, err := mnemonic.Decode(words, list); err != nil {
		p.Errorf("Invalid seed phrase: %v", err)
		return nil
	}

	passphrase, err := p.Secret(ctx, "Enter the passphrase (optional): ")
	if prompt.IsExit(err) {
		return nil
	}
	if err != nil {
		return err
	}

	seed := mnemonic.Seed(words, passphrase)
	key, err := mnemonic.MasterKey(seed)
	if err != nil {
		return errors.Wrap(err, "error deriving root key")
	}
	p.Boldf("\n=> Seed phrase is valid (%d words, %s)", len(words), lang)
	p.Printf("BIP39 seed: %s\n", hex.EncodeToString(seed))
	p.Printf("BIP32 root public key: %s\n", key.PublicKey().String())
	return nil
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyLanguage, "language", "l", "", "Sets the phrase's language")
	rootCmd.AddCommand(verifyCmd)
}
