package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zelcry/zelcry-api/internal/services"
)

// GetMarkets devuelve el listado general de mercados
func GetMarkets(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		limit = 100
	}

	c.JSON(http.StatusOK, gin.H{"coins": services.GetMarkets(limit)})
}

// GetCoinDetails devuelve el detalle de una moneda: precio actual, serie de
// 30 días, perfil de impacto y explicaciones de cada sub-score
func GetCoinDetails(c *gin.Context) {
	coinID := c.Param("coin_id")

	details, err := detailsRepo.GetDetails(coinID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if details == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Moneda no encontrada"})
		return
	}

	// Precio actual; ante una falla los campos quedan en cero
	var currentPrice, priceChange24h, marketCap, volume24h float64
	prices := services.GetSimplePrices([]string{coinID})
	if p, exists := prices[coinID]; exists {
		currentPrice = p.USD
		priceChange24h = p.USD24hChange
		marketCap = p.USDMarketCap
		volume24h = p.USD24hVol
	}

	chart := services.GetMarketChart(coinID, 30)

	c.JSON(http.StatusOK, gin.H{
		"crypto":                 details,
		"impact_score":           details.ImpactScore(),
		"current_price":          currentPrice,
		"price_change_24h":       priceChange24h,
		"market_cap":             marketCap,
		"volume_24h":             volume24h,
		"chart_data":             chart,
		"energy_explanation":     services.EnergyExplanation(details.EnergyScore),
		"governance_explanation": services.GovernanceExplanation(details.GovernanceScore),
		"utility_explanation":    services.UtilityExplanation(details.UtilityScore),
	})
}
