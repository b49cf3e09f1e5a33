package models

import "math"

// CryptoAssetDetails contiene los sub-scores de impacto de una criptomoneda.
// Cada sub-score va de 0 a 10.
type CryptoAssetDetails struct {
	CoinID          string `json:"coin_id"`
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	EnergyScore     int    `json:"energy_score"`
	GovernanceScore int    `json:"governance_score"`
	UtilityScore    int    `json:"utility_score"`
	Description     string `json:"description"`
}

// ImpactScore devuelve el promedio de los tres sub-scores redondeado a un decimal
func (c CryptoAssetDetails) ImpactScore() float64 {
	energy := clampScore(c.EnergyScore)
	governance := clampScore(c.GovernanceScore)
	utility := clampScore(c.UtilityScore)

	mean := float64(energy+governance+utility) / 3
	return math.Round(mean*10) / 10
}

// clampScore limita un sub-score al rango [0,10]
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
