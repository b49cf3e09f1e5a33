package services

import (
	"math"

	"github.com/zelcry/zelcry-api/internal/models"
)

// Puntos de experiencia otorgados por cada acción del usuario
const (
	XPSignup      = 50
	XPLogin       = 5
	XPAddAsset    = 25
	XPWatchlist   = 5
	XPCreateAlert = 10
	XPChat        = 2
)

// levelTier es un nivel de la tabla de niveles, con su umbral mínimo de XP
type levelTier struct {
	MinXP int
	Name  string
	Badge string
	Level int
}

// Tabla ordenada ascendente por umbral. Los umbrales son inclusivos:
// exactamente 50 XP ya es Bronze.
var levelTiers = []levelTier{
	{0, "Beginner", "🌱", 1},
	{50, "Bronze", "🥉", 2},
	{100, "Silver", "🥈", 3},
	{250, "Gold", "🥇", 5},
	{500, "Platinum", "🏆", 7},
	{1000, "Diamond", "💎", 10},
}

// LevelForXP deriva nivel, insignia y progreso hacia el siguiente nivel a
// partir de los puntos acumulados. Es un mapeo puro e idempotente.
func LevelForXP(xpPoints int) models.UserLevel {
	if xpPoints < 0 {
		xpPoints = 0
	}

	current := levelTiers[0]
	nextThreshold := 0

	for i, tier := range levelTiers {
		if xpPoints >= tier.MinXP {
			current = tier
			if i+1 < len(levelTiers) {
				nextThreshold = levelTiers[i+1].MinXP
			} else {
				nextThreshold = 0 // Nivel máximo alcanzado
			}
		}
	}

	level := models.UserLevel{
		Name:        current.Name,
		Badge:       current.Badge,
		Level:       current.Level,
		XPPoints:    xpPoints,
		NextLevelXP: nextThreshold,
	}

	if nextThreshold > 0 {
		level.ProgressToNext = math.Min(100, float64(xpPoints)/float64(nextThreshold)*100)
	} else {
		level.ProgressToNext = 100
	}

	return level
}
