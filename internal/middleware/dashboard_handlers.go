package middleware

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/zelcry/zelcry-api/internal/models"
	"github.com/zelcry/zelcry-api/internal/services"
)

// GetDashboard arma el panel principal del usuario: mercados, portafolio
// valuado, scores, nivel y la serie histórica de Bitcoin
func GetDashboard(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	// Listado general de mercados; ante una falla llega vacío
	allCoins := services.GetMarkets(100)

	topCoins := allCoins
	if len(topCoins) > 50 {
		topCoins = topCoins[:50]
	}

	trendingCoins := sortByChange24h(allCoins, true)
	topLosers := sortByChange24h(allCoins, false)

	// Posiciones del usuario valuadas con una sola llamada de precios
	assets, err := assetRepo.GetUserAssets(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	valuations, summary := valuateUserAssets(assets)

	scores := models.PortfolioScores{
		Diversification: services.DiversificationScore(summary.NumCoins),
		Sustainability:  services.SustainabilityScore(valuations),
	}

	// Nivel y progreso derivados de los puntos acumulados
	profile, err := profileRepo.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	level := services.LevelForXP(profile.XPPoints)

	bitcoinChart := services.GetMarketChart("bitcoin", 30)

	topSustainable, err := detailsRepo.TopSustainable(5)
	if err != nil {
		topSustainable = []models.CryptoAssetDetails{}
	}

	dashboard := models.Dashboard{
		TopCoins:       topCoins,
		TrendingCoins:  trendingCoins,
		TopLosers:      topLosers,
		Portfolio:      valuations,
		Summary:        summary,
		Scores:         scores,
		Level:          level,
		BitcoinChart:   bitcoinChart,
		TopSustainable: topSustainable,
	}

	c.JSON(http.StatusOK, dashboard)
}

// sortByChange24h devuelve las 10 monedas con mayor (o menor) cambio en 24h
func sortByChange24h(coins []models.MarketCoin, descending bool) []models.MarketCoin {
	sorted := make([]models.MarketCoin, len(coins))
	copy(sorted, coins)

	sort.Slice(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].PriceChangePercentage24h > sorted[j].PriceChangePercentage24h
		}
		return sorted[i].PriceChangePercentage24h < sorted[j].PriceChangePercentage24h
	})

	if len(sorted) > 10 {
		sorted = sorted[:10]
	}
	return sorted
}
