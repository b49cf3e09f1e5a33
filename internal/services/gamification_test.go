package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXPBoundaries(t *testing.T) {
	tests := []struct {
		xp    int
		name  string
		level int
	}{
		{0, "Beginner", 1},
		{49, "Beginner", 1},
		{50, "Bronze", 2}, // el umbral es inclusivo
		{99, "Bronze", 2},
		{100, "Silver", 3},
		{249, "Silver", 3},
		{250, "Gold", 5},
		{499, "Gold", 5},
		{500, "Platinum", 7},
		{999, "Platinum", 7},
		{1000, "Diamond", 10},
		{5000, "Diamond", 10},
	}

	for _, tt := range tests {
		level := LevelForXP(tt.xp)
		assert.Equal(t, tt.name, level.Name, "xp=%d", tt.xp)
		assert.Equal(t, tt.level, level.Level, "xp=%d", tt.xp)
		assert.Equal(t, tt.xp, level.XPPoints, "xp=%d", tt.xp)
	}
}

func TestLevelForXPProgress(t *testing.T) {
	// A mitad de camino hacia Bronze
	level := LevelForXP(25)
	assert.Equal(t, 50, level.NextLevelXP)
	assert.Equal(t, 50.0, level.ProgressToNext)

	// En el nivel máximo el progreso queda fijo en 100
	top := LevelForXP(2000)
	assert.Equal(t, 0, top.NextLevelXP)
	assert.Equal(t, 100.0, top.ProgressToNext)
}

func TestLevelForXPNegative(t *testing.T) {
	// Los puntos negativos se tratan como cero
	level := LevelForXP(-10)
	assert.Equal(t, "Beginner", level.Name)
	assert.Equal(t, 0, level.XPPoints)
}
