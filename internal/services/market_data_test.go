package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withMarketServer apunta el cliente de mercados a un servidor de prueba
func withMarketServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	server := httptest.NewServer(handler)
	original := coingeckoBaseURL
	coingeckoBaseURL = server.URL

	t.Cleanup(func() {
		coingeckoBaseURL = original
		server.Close()
	})
}

func TestGetSimplePrices(t *testing.T) {
	withMarketServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin,ethereum", r.URL.Query().Get("ids"))

		w.Write([]byte(`{
			"bitcoin": {"usd": 30000, "usd_market_cap": 600000000000, "usd_24h_vol": 15000000000, "usd_24h_change": 2.1},
			"ethereum": {"usd": 2000, "usd_market_cap": 240000000000, "usd_24h_vol": 8000000000, "usd_24h_change": -1.3}
		}`))
	})

	prices := GetSimplePrices([]string{"bitcoin", "ethereum"})

	require.Len(t, prices, 2)
	assert.Equal(t, 30000.0, prices["bitcoin"].USD)
	assert.Equal(t, 2.1, prices["bitcoin"].USD24hChange)
	assert.Equal(t, 2000.0, prices["ethereum"].USD)
}

func TestGetSimplePricesEmptyInput(t *testing.T) {
	// Sin monedas no se hace ninguna llamada
	withMarketServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no debería haber llamadas HTTP")
	})

	prices := GetSimplePrices(nil)

	assert.Empty(t, prices)
}

func TestGetSimplePricesServerError(t *testing.T) {
	withMarketServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	prices := GetSimplePrices([]string{"bitcoin"})

	assert.Empty(t, prices)
}

func TestGetMarkets(t *testing.T) {
	withMarketServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/markets", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))

		w.Write([]byte(`[
			{"id": "bitcoin", "symbol": "btc", "name": "Bitcoin", "current_price": 30000, "market_cap_rank": 1, "price_change_percentage_24h": 2.1},
			{"id": "ethereum", "symbol": "eth", "name": "Ethereum", "current_price": 2000, "market_cap_rank": 2, "price_change_percentage_24h": -1.3}
		]`))
	})

	coins := GetMarkets(10)

	require.Len(t, coins, 2)
	assert.Equal(t, "bitcoin", coins[0].ID)
	assert.Equal(t, 1, coins[0].MarketCapRank)
}

func TestGetMarketsDegradesToEmpty(t *testing.T) {
	withMarketServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	coins := GetMarkets(10)

	assert.NotNil(t, coins)
	assert.Empty(t, coins)
}

func TestGetMarketsInvalidJSON(t *testing.T) {
	withMarketServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "a list"}`))
	})

	assert.Empty(t, GetMarkets(10))
}

func TestGetTopGainersUsesChangeOrder(t *testing.T) {
	withMarketServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "price_change_percentage_24h_desc", r.URL.Query().Get("order"))
		w.Write([]byte(`[{"id": "solana", "name": "Solana", "price_change_percentage_24h": 12.5}]`))
	})

	gainers := GetTopGainers(5)

	require.Len(t, gainers, 1)
	assert.Equal(t, "solana", gainers[0].ID)
}

func TestGetMarketChartDownsamples(t *testing.T) {
	withMarketServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/bitcoin/market_chart", r.URL.Path)

		// 48 puntos horarios: el downsampling deja un punto cada 24
		body := `{"prices": [`
		for i := 0; i < 48; i++ {
			if i > 0 {
				body += ","
			}
			body += `[1700000000000, 100]`
		}
		body += `]}`
		w.Write([]byte(body))
	})

	chart := GetMarketChart("bitcoin", 2)

	assert.Len(t, chart.Prices, 2)
	assert.Len(t, chart.Labels, 2)
	assert.Equal(t, 100.0, chart.Prices[0])
}

func TestGetMarketChartDegradesToEmpty(t *testing.T) {
	withMarketServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	chart := GetMarketChart("unknown", 30)

	assert.Empty(t, chart.Prices)
	assert.Empty(t, chart.Labels)
}
