package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioAsset representa una posición del usuario en una criptomoneda.
// Las cantidades y precios usan aritmética decimal para evitar errores de
// redondeo en los cálculos monetarios.
type PortfolioAsset struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	CoinID        string          `json:"coin_id"`
	CoinName      string          `json:"coin_name"`
	CoinSymbol    string          `json:"coin_symbol"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AssetValuation es la valuación de una posición con los precios actuales
type AssetValuation struct {
	Asset          PortfolioAsset  `json:"asset"`
	CurrentPrice   decimal.Decimal `json:"current_price"`
	PriceChange24h float64         `json:"price_change_24h"`
	CurrentValue   decimal.Decimal `json:"current_value"`
	Invested       decimal.Decimal `json:"invested"`
	ProfitLoss     decimal.Decimal `json:"profit_loss"`
	ROI            decimal.Decimal `json:"roi"`
	ImpactScore    *float64        `json:"impact_score,omitempty"` // nil cuando la moneda no tiene perfil de impacto
}

// PortfolioSummary contiene los totales agregados del portafolio
type PortfolioSummary struct {
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalInvested decimal.Decimal `json:"total_invested"`
	ProfitLoss    decimal.Decimal `json:"profit_loss"`
	ROI           decimal.Decimal `json:"roi"`
	NumCoins      int             `json:"num_coins"`
}
