package services

import (
	"math"

	"github.com/zelcry/zelcry-api/internal/models"
)

// DiversificationScore crece linealmente con la cantidad de monedas
// distintas y satura exactamente en 10 monedas
func DiversificationScore(numCoins int) float64 {
	if numCoins <= 0 {
		return 0
	}
	return math.Min(10, float64(numCoins)/10*10)
}

// SustainabilityScore es la proporción de posiciones con impact score >= 7
// escalada a 10. Un portafolio vacío da 0, nunca una división por cero.
// Las posiciones sin perfil de impacto cuentan como no sostenibles.
func SustainabilityScore(valuations []models.AssetValuation) float64 {
	if len(valuations) == 0 {
		return 0
	}

	sustainable := 0
	for _, v := range valuations {
		if v.ImpactScore != nil && *v.ImpactScore >= 7 {
			sustainable++
		}
	}

	return float64(sustainable) / float64(len(valuations)) * 10
}

// RiskScore combina el riesgo base por ranking de capitalización con la
// volatilidad de 24 horas, acotado a 10
func RiskScore(marketCapRank int, volatility24h float64) float64 {
	var baseRisk float64
	switch {
	case marketCapRank <= 10:
		baseRisk = 3
	case marketCapRank <= 50:
		baseRisk = 5
	default:
		baseRisk = 7
	}

	volatilityRisk := math.Min(3, math.Abs(volatility24h)/10)

	return math.Min(10, baseRisk+volatilityRisk)
}

// scoreBand es una banda de un sub-score con su texto explicativo.
// Las bandas se evalúan en orden: límite inferior inclusivo, superior exclusivo.
type scoreBand struct {
	Low  int
	High int
	Text string
}

var energyBands = []scoreBand{
	{0, 4, "⚠️ High energy consumption - Uses proof-of-work mining which requires significant electricity"},
	{4, 7, "⚡ Moderate energy use - More efficient than Bitcoin but room for improvement"},
	{7, 11, "🌱 Eco-friendly - Uses proof-of-stake or other energy-efficient consensus"},
}

var governanceBands = []scoreBand{
	{0, 4, "⚠️ Centralized - Limited community input in decision making"},
	{4, 7, "🤝 Partially decentralized - Some community governance mechanisms"},
	{7, 11, "🗳️ Highly decentralized - Strong community governance and voting rights"},
}

var utilityBands = []scoreBand{
	{0, 4, "Limited real-world applications currently"},
	{4, 7, "Growing adoption with practical use cases"},
	{7, 11, "Wide adoption with proven real-world utility"},
}

func explainScore(bands []scoreBand, score int) string {
	for _, band := range bands {
		if score >= band.Low && score < band.High {
			return band.Text
		}
	}
	return ""
}

// EnergyExplanation devuelve el texto explicativo del sub-score de energía
func EnergyExplanation(score int) string {
	return explainScore(energyBands, score)
}

// GovernanceExplanation devuelve el texto explicativo del sub-score de gobernanza
func GovernanceExplanation(score int) string {
	return explainScore(governanceBands, score)
}

// UtilityExplanation devuelve el texto explicativo del sub-score de utilidad
func UtilityExplanation(score int) string {
	return explainScore(utilityBands, score)
}
