package cmd

import (
	"context"
	"github.com/kurumiimari/bithub"
	"github.com/kurumiimari/bithub/ghttp"
	"github.com/kurumiimari/bithub/quotes"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"io"
)

var quotesOnce bool

var quotesCmd = &cobra.Command{
	Use:   "quotes",
	Short: "Displays Bitcoin, dollar and market index quotations every interval",
	RunE: func(cmd *cobra.Command, args []string) error {
		if quotesOnce {
			return withConsole(cmd, printQuotesOnce)
		}
		return withConsole(cmd, runQuotes)
	},
}

func newQuotesClient(settings bithub.QuoteSettings) *quotes.Client {
	indices := make([]quotes.Index, len(settings.Indices))
	for i, idx := range settings.Indices {
		indices[i] = quotes.Index{
			Name:   idx.Name,
			Symbol: idx.Symbol,
		}
	}
	return quotes.NewClient(ghttp.NewTimeoutClient(settings.Timeout), quotes.Endpoints{
		BTCBRL: settings.BTCBRL,
		BTCUSD: settings.BTCUSD,
		USDBRL: settings.USDBRL,
		Chart:  settings.ChartURL,
	}, indices)
}

func runQuotes(ctx context.Context, c *console) error {
	settings := bithub.Config.Settings.Quotes
	printer, err := quotes.NewPrinter(settings.Locale)
	if err != nil {
		return errors.Wrap(err, "invalid locale")
	}

	monitor := quotes.NewMonitor(newQuotesClient(settings), settings.Interval, c.out, printer)
	if err := monitor.Run(ctx); err != nil {
		return err
	}
	c.prompter.Println("\nExiting the real-time quotations program...")
	return nil
}

func printQuotesOnce(ctx context.Context, c *console) error {
	settings := bithub.Config.Settings.Quotes
	printer, err := quotes.NewPrinter(settings.Locale)
	if err != nil {
		return errors.Wrap(err, "invalid locale")
	}

	q, err := newQuotesClient(settings).Fetch(ctx)
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.out, quotes.Format(q, printer))
	return err
}

func init() {
	quotesCmd.Flags().BoolVar(&quotesOnce, "once", false, "Fetches one set of quotations and exits")
	rootCmd.AddCommand(quotesCmd)
}
