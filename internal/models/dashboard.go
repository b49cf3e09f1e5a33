package models

// Dashboard es la respuesta completa del panel principal del usuario
type Dashboard struct {
	TopCoins       []MarketCoin         `json:"top_coins"`
	TrendingCoins  []MarketCoin         `json:"trending_coins"`
	TopLosers      []MarketCoin         `json:"top_losers"`
	Portfolio      []AssetValuation     `json:"portfolio"`
	Summary        PortfolioSummary     `json:"summary"`
	Scores         PortfolioScores      `json:"scores"`
	Level          UserLevel            `json:"level"`
	BitcoinChart   ChartData            `json:"bitcoin_chart"`
	TopSustainable []CryptoAssetDetails `json:"top_sustainable"`
}

// PortfolioScores agrupa los scores de diversificación y sostenibilidad
type PortfolioScores struct {
	Diversification float64 `json:"diversification_score"`
	Sustainability  float64 `json:"sustainability_score"`
}
