package bithub

import (
	"bytes"
	"github.com/kurumiimari/bithub/mnemonic"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"time"
)

type config struct {
	Prefix   string
	Settings *Settings
}

var Config = &config{
	Settings: DefaultSettings(),
}

type Settings struct {
	Seed   SeedSettings  `yaml:"seed"`
	Quotes QuoteSettings `yaml:"quotes"`
	Log    LogSettings   `yaml:"log"`
}

type SeedSettings struct {
	Language string `yaml:"language"`
	Output   string `yaml:"output"`
}

type QuoteSettings struct {
	Interval time.Duration  `yaml:"interval"`
	Timeout  time.Duration  `yaml:"timeout"`
	Locale   string         `yaml:"locale"`
	BTCBRL   string         `yaml:"btc_brl_url"`
	BTCUSD   string         `yaml:"btc_usd_url"`
	USDBRL   string         `yaml:"usd_brl_url"`
	ChartURL string         `yaml:"chart_url"`
	Indices  []IndexSetting `yaml:"indices"`
}

type IndexSetting struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}

type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Seed: SeedSettings{
			Language: string(mnemonic.DefaultLanguage),
			Output:   "~/Documents/seed_bip39.txt",
		},
		Quotes: QuoteSettings{
			Interval: 15 * time.Second,
			Timeout:  10 * time.Second,
			Locale:   "en-US",
			BTCBRL:   "https://www.mercadobitcoin.net/api/BTC/ticker/",
			BTCUSD:   "https://api.coindesk.com/v1/bpi/currentprice.json",
			USDBRL:   "https://economia.awesomeapi.com.br/json/last/USD-BRL",
			ChartURL: "https://query1.finance.yahoo.com/v8/finance/chart/%s?range=1d&interval=1d",
			Indices: []IndexSetting{
				{Name: "Bovespa index (IBOV)", Symbol: "^BVSP"},
				{Name: "S&P 500", Symbol: "^GSPC"},
				{Name: "Nasdaq", Symbol: "^IXIC"},
			},
		},
		Log: LogSettings{
			Level: "warning",
		},
	}
}

// LoadSettings overlays the YAML file at path on the defaults. A missing file
// yields the defaults.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(settings); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "error parsing config file %s", path)
	}
	if err := settings.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file %s", path)
	}
	return settings, nil
}

func (s *Settings) Validate() error {
	if _, err := mnemonic.ParseLanguage(s.Seed.Language); err != nil {
		return errors.Wrap(err, "seed.language")
	}
	if s.Seed.Output == "" {
		return errors.New("seed.output must not be empty")
	}
	if s.Quotes.Interval <= 0 {
		return errors.New("quotes.interval must be positive")
	}
	if s.Quotes.Timeout <= 0 {
		return errors.New("quotes.timeout must be positive")
	}
	if _, err := language.Parse(s.Quotes.Locale); err != nil {
		return errors.Wrap(err, "quotes.locale")
	}
	for _, idx := range s.Quotes.Indices {
		if idx.Name == "" || idx.Symbol == "" {
			return errors.New("quotes.indices entries need a name and a symbol")
		}
	}
	return nil
}
