package models

// Niveles de tolerancia al riesgo del usuario
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// UserProfile representa el perfil del usuario: tolerancia al riesgo,
// puntos de experiencia acumulados y tema de la interfaz
type UserProfile struct {
	UserID        string `json:"user_id"`
	RiskTolerance string `json:"risk_tolerance"`
	XPPoints      int    `json:"xp_points"`
	Theme         string `json:"theme"`
}

// ValidRiskTolerance verifica que el valor recibido sea un nivel de riesgo válido
func ValidRiskTolerance(risk string) bool {
	return risk == RiskLow || risk == RiskMedium || risk == RiskHigh
}

// UserLevel representa el nivel y la insignia derivados de los puntos de experiencia
type UserLevel struct {
	Name           string  `json:"name"`
	Badge          string  `json:"badge"`
	Level          int     `json:"level"`
	XPPoints       int     `json:"xp_points"`
	NextLevelXP    int     `json:"next_level_xp"`
	ProgressToNext float64 `json:"progress_to_next"`
}
