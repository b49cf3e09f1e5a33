package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioSnapshot es un registro inmutable del valor del portafolio en un momento dado
type PortfolioSnapshot struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalInvested decimal.Decimal `json:"total_invested"`
	ProfitLoss    decimal.Decimal `json:"profit_loss"`
	ROI           decimal.Decimal `json:"roi"`
	CreatedAt     time.Time       `json:"created_at"`
}
