package services

import (
	"github.com/shopspring/decimal"
	"github.com/zelcry/zelcry-api/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// ValuateAsset calcula la valuación de una posición con el precio actual.
// Cuando el precio no está disponible (price nil) el valor actual queda en
// cero pero lo invertido se calcula igual a partir de los datos guardados.
func ValuateAsset(asset models.PortfolioAsset, price *models.SimplePrice) models.AssetValuation {
	valuation := models.AssetValuation{
		Asset:    asset,
		Invested: asset.Quantity.Mul(asset.PurchasePrice),
	}

	if price != nil {
		valuation.CurrentPrice = decimal.NewFromFloat(price.USD)
		valuation.PriceChange24h = price.USD24hChange
	}

	valuation.CurrentValue = asset.Quantity.Mul(valuation.CurrentPrice)
	valuation.ProfitLoss = valuation.CurrentValue.Sub(valuation.Invested)
	valuation.ROI = roiPercentage(valuation.ProfitLoss, valuation.Invested)

	return valuation
}

// ValuatePortfolio valúa cada posición y calcula los totales agregados.
// Una moneda sin precio nunca aborta el cálculo del resto.
func ValuatePortfolio(assets []models.PortfolioAsset, prices map[string]models.SimplePrice) ([]models.AssetValuation, models.PortfolioSummary) {
	valuations := make([]models.AssetValuation, 0, len(assets))

	totalValue := decimal.Zero
	totalInvested := decimal.Zero

	for _, asset := range assets {
		var price *models.SimplePrice
		if p, exists := prices[asset.CoinID]; exists {
			price = &p
		}

		valuation := ValuateAsset(asset, price)
		valuations = append(valuations, valuation)

		totalValue = totalValue.Add(valuation.CurrentValue)
		totalInvested = totalInvested.Add(valuation.Invested)
	}

	profitLoss := totalValue.Sub(totalInvested)

	summary := models.PortfolioSummary{
		TotalValue:    totalValue,
		TotalInvested: totalInvested,
		ProfitLoss:    profitLoss,
		ROI:           roiPercentage(profitLoss, totalInvested),
		NumCoins:      len(assets),
	}

	return valuations, summary
}

// roiPercentage calcula profit/invested*100 con guarda contra división por
// cero: con inversión cero el ROI se define como 0
func roiPercentage(profitLoss, invested decimal.Decimal) decimal.Decimal {
	if !invested.IsPositive() {
		return decimal.Zero
	}
	return profitLoss.Div(invested).Mul(oneHundred)
}
