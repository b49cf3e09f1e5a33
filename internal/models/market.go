package models

// MarketCoin es una entrada del listado de mercados de CoinGecko
type MarketCoin struct {
	ID                       string  `json:"id"`
	Symbol                   string  `json:"symbol"`
	Name                     string  `json:"name"`
	Image                    string  `json:"image"`
	CurrentPrice             float64 `json:"current_price"`
	MarketCap                float64 `json:"market_cap"`
	MarketCapRank            int     `json:"market_cap_rank"`
	TotalVolume              float64 `json:"total_volume"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	PriceChangePercentage7d  float64 `json:"price_change_percentage_7d_in_currency"`
}

// SimplePrice es la cotización puntual de una moneda
type SimplePrice struct {
	USD          float64 `json:"usd"`
	USDMarketCap float64 `json:"usd_market_cap"`
	USD24hVol    float64 `json:"usd_24h_vol"`
	USD24hChange float64 `json:"usd_24h_change"`
}

// ChartData contiene una serie de precios lista para graficar
type ChartData struct {
	Labels []string  `json:"labels"`
	Prices []float64 `json:"prices"`
}
