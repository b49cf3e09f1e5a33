package repository

import (
	"database/sql"

	"github.com/zelcry/zelcry-api/internal/models"
)

// ProfileRepository maneja el perfil del usuario: riesgo, XP y tema
type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetProfile(userID string) (*models.UserProfile, error) {
	profile := &models.UserProfile{}
	query := `SELECT user_id, risk_tolerance, xp_points, theme FROM user_profiles WHERE user_id = ?`

	err := r.db.QueryRow(query, userID).Scan(
		&profile.UserID,
		&profile.RiskTolerance,
		&profile.XPPoints,
		&profile.Theme,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return profile, err
}

// AddXP incrementa los puntos de experiencia con un único UPDATE atómico
// por usuario. El contador nunca decrementa.
func (r *ProfileRepository) AddXP(userID string, points int) error {
	if points <= 0 {
		return nil
	}

	query := `UPDATE user_profiles SET xp_points = xp_points + ? WHERE user_id = ?`

	_, err := r.db.Exec(query, points, userID)
	return err
}

func (r *ProfileRepository) UpdateRiskTolerance(userID, riskTolerance string) error {
	query := `UPDATE user_profiles SET risk_tolerance = ? WHERE user_id = ?`

	_, err := r.db.Exec(query, riskTolerance, userID)
	return err
}

func (r *ProfileRepository) UpdateTheme(userID, theme string) error {
	query := `UPDATE user_profiles SET theme = ? WHERE user_id = ?`

	_, err := r.db.Exec(query, theme, userID)
	return err
}
