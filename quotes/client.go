package quotes

import (
	"context"
	"fmt"
	"github.com/kurumiimari/bithub/ghttp"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"net/url"
	"time"
)

const userAgent = "Mozilla/5.0 (compatible; bithub/1.0)"

var (
	ErrMissingQuote = errors.New("response has no quote")
	ErrNotPositive  = errors.New("quote is not positive")
)

type Fetcher interface {
	Fetch(ctx context.Context) (*Quotes, error)
}

type Client struct {
	http      *ghttp.HTTPClient
	endpoints Endpoints
	indices   []Index
	now       func() time.Time
}

func NewClient(httpClient *ghttp.HTTPClient, endpoints Endpoints, indices []Index) *Client {
	if httpClient == nil {
		httpClient = ghttp.DefaultClient
	}
	return &Client{
		http:      httpClient,
		endpoints: endpoints,
		indices:   indices,
		now:       time.Now,
	}
}

// Fetch retrieves every quote concurrently. Any single failure fails the
// whole fetch so callers never see a partial set.
func (c *Client) Fetch(ctx context.Context) (*Quotes, error) {
	q := &Quotes{
		Indices: make([]IndexQuote, len(c.indices)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := c.BTCBRL(gctx)
		q.BTCBRL = v
		return err
	})
	g.Go(func() error {
		v, err := c.BTCUSD(gctx)
		q.BTCUSD = v
		return err
	})
	g.Go(func() error {
		v, err := c.USDBRL(gctx)
		q.USDBRL = v
		return err
	})
	for i, idx := range c.indices {
		i, idx := i, idx
		g.Go(func() error {
			v, err := c.IndexClose(gctx, idx.Symbol)
			q.Indices[i] = IndexQuote{
				Name:   idx.Name,
				Symbol: idx.Symbol,
				Points: v,
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "error fetching quotes")
	}
	q.At = c.now()
	return q, nil
}

func (c *Client) BTCBRL(ctx context.Context) (float64, error) {
	res := new(tickerRes)
	if err := c.getJSON(ctx, c.endpoints.BTCBRL, res); err != nil {
		return 0, errors.Wrap(err, "error getting BTC/BRL ticker")
	}
	return positive("BTC/BRL", float64(res.Ticker.Last))
}

func (c *Client) BTCUSD(ctx context.Context) (float64, error) {
	res := new(bpiRes)
	if err := c.getJSON(ctx, c.endpoints.BTCUSD, res); err != nil {
		return 0, errors.Wrap(err, "error getting BTC/USD index")
	}
	return positive("BTC/USD", float64(res.BPI.USD.RateFloat))
}

func (c *Client) USDBRL(ctx context.Context) (float64, error) {
	res := new(usdBRLRes)
	if err := c.getJSON(ctx, c.endpoints.USDBRL, res); err != nil {
		return 0, errors.Wrap(err, "error getting USD/BRL rate")
	}
	return positive("USD/BRL", float64(res.USDBRL.Bid))
}

// IndexClose returns the latest non-null close of the day's chart, falling
// back to the regular market price.
func (c *Client) IndexClose(ctx context.Context, symbol string) (float64, error) {
	res := new(chartRes)
	u := fmt.Sprintf(c.endpoints.Chart, url.PathEscape(symbol))
	if err := c.getJSON(ctx, u, res); err != nil {
		return 0, errors.Wrapf(err, "error getting %s chart", symbol)
	}
	if res.Chart.Error != nil {
		return 0, errors.Errorf("chart error for %s: %s", symbol, res.Chart.Error.Description)
	}
	if len(res.Chart.Result) == 0 {
		return 0, errors.Wrapf(ErrMissingQuote, "%s", symbol)
	}

	result := res.Chart.Result[0]
	for _, quote := range result.Indicators.Quote {
		for i := len(quote.Close) - 1; i >= 0; i-- {
			if quote.Close[i] != nil {
				return positive(symbol, float64(*quote.Close[i]))
			}
		}
	}
	if result.Meta.RegularMarketPrice != nil {
		return positive(symbol, float64(*result.Meta.RegularMarketPrice))
	}
	return 0, errors.Wrapf(ErrMissingQuote, "%s", symbol)
}

func (c *Client) getJSON(ctx context.Context, u string, res interface{}) error {
	return c.http.DoGetJSON(ctx, u, res, ghttp.WithHeader("User-Agent", userAgent))
}

func positive(name string, v float64) (float64, error) {
	if v <= 0 {
		return 0, errors.Wrapf(ErrNotPositive, "%s = %v", name, v)
	}
	return v, nil
}
