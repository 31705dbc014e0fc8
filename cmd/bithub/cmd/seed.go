package cmd

import (
	"context"
	"github.com/kurumiimari/bithub"
	"github.com/kurumiimari/bithub/mnemonic"
	"github.com/kurumiimari/bithub/seed"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	seedOutput string
	seedPlain  bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generates a deterministic seed phrase from a string, a hash or a text file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConsole(cmd, runSeed)
	},
}

func runSeed(ctx context.Context, c *console) error {
	settings := bithub.Config.Settings.Seed

	out := settings.Output
	if seedOutput != "" {
		out = seedOutput
	}
	out, err := bithub.ExpandHome(out)
	if err != nil {
		return err
	}
	lang, err := mnemonic.ParseLanguage(settings.Language)
	if err != nil {
		return errors.Wrap(err, "invalid default language")
	}

	catalog := mnemonic.NewCatalog(dataDir.WordlistDir())
	session := seed.NewSession(c.prompter, seed.NewDeriver(catalog), out, seed.Config{
		Language:  lang,
		Enumerate: !seedPlain,
	})
	return session.Run(ctx)
}

func init() {
	seedCmd.Flags().StringVarP(&seedOutput, "output", "o", "", "Sets the file seeds are saved to")
	seedCmd.Flags().BoolVar(&seedPlain, "plain", false, "Displays the seed phrase on one line")
	rootCmd.AddCommand(seedCmd)
}
