package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de disparo de una alerta de precio
const (
	AlertConditionAbove = "above"
	AlertConditionBelow = "below"
)

// PriceAlert representa una alerta de precio del usuario. Una vez disparada
// pasa a inactiva y nunca se reactiva automáticamente.
type PriceAlert struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	CoinID      string          `json:"coin_id"`
	CoinName    string          `json:"coin_name"`
	CoinSymbol  string          `json:"coin_symbol"`
	TargetPrice decimal.Decimal `json:"target_price"`
	Condition   string          `json:"condition"`
	IsActive    bool            `json:"is_active"`
	TriggeredAt *time.Time      `json:"triggered_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ShouldTrigger indica si la alerta debe dispararse con el precio actual
func (a PriceAlert) ShouldTrigger(currentPrice decimal.Decimal) bool {
	if !a.IsActive {
		return false
	}

	switch a.Condition {
	case AlertConditionAbove:
		return currentPrice.GreaterThanOrEqual(a.TargetPrice)
	case AlertConditionBelow:
		return currentPrice.LessThanOrEqual(a.TargetPrice)
	}
	return false
}
