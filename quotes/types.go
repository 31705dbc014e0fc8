// Package quotes polls bitcoin, dollar and stock index prices.
package quotes

import (
	"github.com/kurumiimari/bithub/gjson"
	"time"
)

type Quotes struct {
	BTCBRL  float64
	BTCUSD  float64
	USDBRL  float64
	Indices []IndexQuote
	At      time.Time
}

type IndexQuote struct {
	Name   string
	Symbol string
	Points float64
}

type Index struct {
	Name   string
	Symbol string
}

type Endpoints struct {
	BTCBRL string
	BTCUSD string
	USDBRL string
	// Chart is a format string with one %s verb for the escaped symbol.
	Chart string
}

type tickerRes struct {
	Ticker struct {
		Last gjson.Float `json:"last"`
	} `json:"ticker"`
}

type bpiRes struct {
	BPI struct {
		USD struct {
			RateFloat gjson.Float `json:"rate_float"`
		} `json:"USD"`
	} `json:"bpi"`
}

type usdBRLRes struct {
	USDBRL struct {
		Bid gjson.Float `json:"bid"`
	} `json:"USDBRL"`
}

type chartRes struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string       `json:"symbol"`
				RegularMarketPrice *gjson.Float `json:"regularMarketPrice"`
			} `json:"meta"`
			Indicators struct {
				Quote []struct {
					Close []*gjson.Float `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}
