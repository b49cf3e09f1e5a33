package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/zelcry/zelcry-api/internal/models"
	"github.com/zelcry/zelcry-api/internal/services"
)

// riskScoredCoin es una moneda del mercado anotada con su score de riesgo
type riskScoredCoin struct {
	models.MarketCoin
	RiskScore float64 `json:"risk_score"`
}

// GetMarketInsights devuelve los movimientos del mercado con el score de
// riesgo de cada moneda
func GetMarketInsights(c *gin.Context) {
	allCoins := services.GetMarkets(100)

	gainers := withRiskScores(sortByChange24h(allCoins, true))
	losers := withRiskScores(sortByChange24h(allCoins, false))

	topByRank := allCoins
	if len(topByRank) > 20 {
		topByRank = topByRank[:20]
	}

	c.JSON(http.StatusOK, gin.H{
		"top_gainers": gainers,
		"top_losers":  losers,
		"top_coins":   withRiskScores(topByRank),
	})
}

func withRiskScores(coins []models.MarketCoin) []riskScoredCoin {
	scored := make([]riskScoredCoin, 0, len(coins))
	for _, coin := range coins {
		scored = append(scored, riskScoredCoin{
			MarketCoin: coin,
			RiskScore:  services.RiskScore(coin.MarketCapRank, coin.PriceChangePercentage24h),
		})
	}
	return scored
}

// GetPortfolioAnalytics desglosa el portafolio del usuario: asignación por
// moneda, mejor y peor posición, y los scores agregados
func GetPortfolioAnalytics(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	assets, err := assetRepo.GetUserAssets(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	valuations, summary := valuateUserAssets(assets)

	type allocation struct {
		CoinID     string          `json:"coin_id"`
		CoinName   string          `json:"coin_name"`
		CoinSymbol string          `json:"coin_symbol"`
		Value      decimal.Decimal `json:"value"`
		Percentage decimal.Decimal `json:"percentage"`
	}

	allocations := make([]allocation, 0, len(valuations))
	var best, worst *models.AssetValuation

	for i := range valuations {
		v := &valuations[i]

		percentage := decimal.Zero
		if summary.TotalValue.IsPositive() {
			percentage = v.CurrentValue.Div(summary.TotalValue).Mul(decimal.NewFromInt(100)).Round(2)
		}

		allocations = append(allocations, allocation{
			CoinID:     v.Asset.CoinID,
			CoinName:   v.Asset.CoinName,
			CoinSymbol: v.Asset.CoinSymbol,
			Value:      v.CurrentValue,
			Percentage: percentage,
		})

		if best == nil || v.ROI.GreaterThan(best.ROI) {
			best = v
		}
		if worst == nil || v.ROI.LessThan(worst.ROI) {
			worst = v
		}
	}

	response := gin.H{
		"summary":     summary,
		"allocations": allocations,
		"scores": models.PortfolioScores{
			Diversification: services.DiversificationScore(summary.NumCoins),
			Sustainability:  services.SustainabilityScore(valuations),
		},
	}
	if best != nil {
		response["best_performer"] = best
	}
	if worst != nil {
		response["worst_performer"] = worst
	}

	c.JSON(http.StatusOK, response)
}
