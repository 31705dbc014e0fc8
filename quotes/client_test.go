package quotes

import (
	"context"
	"github.com/kurumiimari/bithub/ghttp"
	"github.com/kurumiimari/bithub/testutil"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
	"time"
)

var testIndices = []Index{
	{Name: "Bovespa index (IBOV)", Symbol: "^BVSP"},
	{Name: "S&P 500", Symbol: "^GSPC"},
	{Name: "Nasdaq", Symbol: "^IXIC"},
}

var chartFixtures = map[string]string{
	"^BVSP": "chart_bvsp.json",
	"^GSPC": "chart_gspc.json",
	"^IXIC": "chart_ixic.json",
}

func setupUpstream(t *testing.T) (*testutil.FixtureServer, *Client) {
	srv := testutil.NewFixtureServer(t)
	srv.Handle("/btc_brl", http.StatusOK, testutil.ReadFixture(t, "btc_brl.json"))
	srv.Handle("/btc_usd", http.StatusOK, testutil.ReadFixture(t, "btc_usd.json"))
	srv.Handle("/usd_brl", http.StatusOK, testutil.ReadFixture(t, "usd_brl.json"))

	charts := make(map[string][]byte)
	for sym, name := range chartFixtures {
		charts[sym] = testutil.ReadFixture(t, name)
	}
	charts["^DEAD"] = testutil.ReadFixture(t, "chart_error.json")
	srv.HandleVars("/chart/{symbol}", func(vars map[string]string) (int, []byte) {
		body, ok := charts[vars["symbol"]]
		if !ok {
			return http.StatusNotFound, []byte(`{"chart":{"result":null,"error":{"code":"Not Found"}}}`)
		}
		return http.StatusOK, body
	})

	client := NewClient(ghttp.NewTimeoutClient(5*time.Second), Endpoints{
		BTCBRL: srv.URL + "/btc_brl",
		BTCUSD: srv.URL + "/btc_usd",
		USDBRL: srv.URL + "/usd_brl",
		Chart:  srv.URL + "/chart/%s",
	}, testIndices)
	client.now = func() time.Time {
		return time.Date(2024, 6, 10, 13, 5, 9, 0, time.UTC)
	}
	return srv, client
}

func TestFetch(t *testing.T) {
	srv, client := setupUpstream(t)

	q, err := client.Fetch(context.Background())
	require.NoError(t, err)
	require.InDelta(t, 352000.1, q.BTCBRL, 1e-6)
	require.InDelta(t, 67321.4512, q.BTCUSD, 1e-6)
	require.InDelta(t, 5.3456, q.USDBRL, 1e-9)
	require.Equal(t, []IndexQuote{
		// last non-null close
		{Name: "Bovespa index (IBOV)", Symbol: "^BVSP", Points: 120760.9},
		{Name: "S&P 500", Symbol: "^GSPC", Points: 5360.79},
		// no closes, regular market price
		{Name: "Nasdaq", Symbol: "^IXIC", Points: 17192.53},
	}, q.Indices)
	require.Equal(t, 2024, q.At.Year())

	require.Equal(t, 1, srv.Hits("/btc_brl"))
	require.Equal(t, 3, srv.Hits("/chart/{symbol}"))
}

func TestFetchUniformFailure(t *testing.T) {
	tests := []struct {
		name  string
		setup func(srv *testutil.FixtureServer, client *Client)
	}{
		{
			"ticker unavailable",
			func(srv *testutil.FixtureServer, client *Client) {
				client.endpoints.BTCBRL = srv.URL + "/missing"
			},
		},
		{
			"malformed rate",
			func(srv *testutil.FixtureServer, client *Client) {
				srv.Handle("/bad_usd_brl", http.StatusOK, []byte(`{"USDBRL":{"bid":"n/a"}}`))
				client.endpoints.USDBRL = srv.URL + "/bad_usd_brl"
			},
		},
		{
			"zero price",
			func(srv *testutil.FixtureServer, client *Client) {
				srv.Handle("/zero_btc_usd", http.StatusOK, []byte(`{"bpi":{"USD":{"rate_float":0}}}`))
				client.endpoints.BTCUSD = srv.URL + "/zero_btc_usd"
			},
		},
		{
			"chart error",
			func(srv *testutil.FixtureServer, client *Client) {
				client.indices = append(client.indices, Index{Name: "Dead", Symbol: "^DEAD"})
			},
		},
		{
			"unknown symbol",
			func(srv *testutil.FixtureServer, client *Client) {
				client.indices = append(client.indices, Index{Name: "Nope", Symbol: "^NOPE"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, client := setupUpstream(t)
			tt.setup(srv, client)

			q, err := client.Fetch(context.Background())
			require.Error(t, err)
			require.Nil(t, q)
		})
	}
}

func TestFetchCanceled(t *testing.T) {
	_, client := setupUpstream(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q, err := client.Fetch(ctx)
	require.Error(t, err)
	require.Nil(t, q)
}
