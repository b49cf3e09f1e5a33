package repository

import (
	"database/sql"

	"github.com/zelcry/zelcry-api/internal/models"
)

// DetailsRepository maneja los perfiles de impacto de las criptomonedas
type DetailsRepository struct {
	db *sql.DB
}

func NewDetailsRepository(db *sql.DB) *DetailsRepository {
	return &DetailsRepository{db: db}
}

// UpsertDetails inserta o actualiza el perfil de impacto de una moneda.
// Lo usa el job periódico de reseed.
func (r *DetailsRepository) UpsertDetails(details models.CryptoAssetDetails) error {
	query := `
		INSERT INTO crypto_asset_details (coin_id, name, symbol, energy_score, governance_score, utility_score, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(coin_id) DO UPDATE SET
			name = excluded.name,
			symbol = excluded.symbol,
			energy_score = excluded.energy_score,
			governance_score = excluded.governance_score,
			utility_score = excluded.utility_score,
			description = excluded.description`

	_, err := r.db.Exec(
		query,
		details.CoinID,
		details.Name,
		details.Symbol,
		details.EnergyScore,
		details.GovernanceScore,
		details.UtilityScore,
		details.Description,
	)
	return err
}

// GetDetails busca el perfil de impacto de una moneda. Devuelve nil sin
// error cuando la moneda no tiene perfil: ausencia significa "sin puntaje",
// no una falla.
func (r *DetailsRepository) GetDetails(coinID string) (*models.CryptoAssetDetails, error) {
	query := `
		SELECT coin_id, name, symbol, energy_score, governance_score, utility_score, description
		FROM crypto_asset_details
		WHERE coin_id = ?`

	details, err := r.queryOne(query, coinID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return details, err
}

// TopByEnergy devuelve la moneda con mejor score de energía
func (r *DetailsRepository) TopByEnergy() (*models.CryptoAssetDetails, error) {
	query := `
		SELECT coin_id, name, symbol, energy_score, governance_score, utility_score, description
		FROM crypto_asset_details
		ORDER BY energy_score DESC
		LIMIT 1`

	details, err := r.queryOne(query)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return details, err
}

// TopByGovernance devuelve la moneda con mejor score de gobernanza
func (r *DetailsRepository) TopByGovernance() (*models.CryptoAssetDetails, error) {
	query := `
		SELECT coin_id, name, symbol, energy_score, governance_score, utility_score, description
		FROM crypto_asset_details
		ORDER BY governance_score DESC
		LIMIT 1`

	details, err := r.queryOne(query)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return details, err
}

// TopSustainable lista las monedas con score de energía alto, para el panel principal
func (r *DetailsRepository) TopSustainable(limit int) ([]models.CryptoAssetDetails, error) {
	query := `
		SELECT coin_id, name, symbol, energy_score, governance_score, utility_score, description
		FROM crypto_asset_details
		WHERE energy_score >= 7
		ORDER BY energy_score DESC
		LIMIT ?`

	return r.queryMany(query, limit)
}

// RecommendLowRisk: monedas estables y sostenibles, ordenadas por utilidad
func (r *DetailsRepository) RecommendLowRisk(limit int) ([]models.CryptoAssetDetails, error) {
	query := `
		SELECT coin_id, name, symbol, energy_score, governance_score, utility_score, description
		FROM crypto_asset_details
		WHERE energy_score >= 7 AND governance_score >= 7
		ORDER BY utility_score DESC
		LIMIT ?`

	return r.queryMany(query, limit)
}

// RecommendMediumRisk: balance entre sostenibilidad y gobernanza
func (r *DetailsRepository) RecommendMediumRisk(limit int) ([]models.CryptoAssetDetails, error) {
	query := `
		SELECT coin_id, name, symbol, energy_score, governance_score, utility_score, description
		FROM crypto_asset_details
		WHERE energy_score >= 6
		ORDER BY governance_score DESC
		LIMIT ?`

	return r.queryMany(query, limit)
}

// RecommendHighRisk: monedas con alta utilidad, ordenadas por energía
func (r *DetailsRepository) RecommendHighRisk(limit int) ([]models.CryptoAssetDetails, error) {
	query := `
		SELECT coin_id, name, symbol, energy_score, governance_score, utility_score, description
		FROM crypto_asset_details
		WHERE utility_score >= 7
		ORDER BY energy_score DESC
		LIMIT ?`

	return r.queryMany(query, limit)
}

func (r *DetailsRepository) queryOne(query string, args ...interface{}) (*models.CryptoAssetDetails, error) {
	details := &models.CryptoAssetDetails{}
	err := r.db.QueryRow(query, args...).Scan(
		&details.CoinID,
		&details.Name,
		&details.Symbol,
		&details.EnergyScore,
		&details.GovernanceScore,
		&details.UtilityScore,
		&details.Description,
	)
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *DetailsRepository) queryMany(query string, args ...interface{}) ([]models.CryptoAssetDetails, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []models.CryptoAssetDetails{}
	for rows.Next() {
		var details models.CryptoAssetDetails
		err := rows.Scan(
			&details.CoinID,
			&details.Name,
			&details.Symbol,
			&details.EnergyScore,
			&details.GovernanceScore,
			&details.UtilityScore,
			&details.Description,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, details)
	}

	return results, rows.Err()
}
