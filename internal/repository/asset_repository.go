package repository

import (
	"database/sql"
	"log"

	"github.com/shopspring/decimal"
	"github.com/zelcry/zelcry-api/internal/models"
)

// AssetRepository maneja las posiciones del portafolio del usuario
type AssetRepository struct {
	db *sql.DB
}

func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// CreateAsset guarda una nueva posición. Cantidad y precio se persisten como
// texto decimal para no perder precisión.
func (r *AssetRepository) CreateAsset(asset *models.PortfolioAsset) error {
	query := `
		INSERT INTO portfolio_assets (id, user_id, coin_id, coin_name, coin_symbol, quantity, purchase_price)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(
		query,
		asset.ID,
		asset.UserID,
		asset.CoinID,
		asset.CoinName,
		asset.CoinSymbol,
		asset.Quantity.String(),
		asset.PurchasePrice.String(),
	)
	return err
}

// GetUserAssets obtiene todas las posiciones del usuario, las más recientes primero
func (r *AssetRepository) GetUserAssets(userID string) ([]models.PortfolioAsset, error) {
	query := `
		SELECT id, user_id, coin_id, coin_name, coin_symbol, quantity, purchase_price, created_at
		FROM portfolio_assets
		WHERE user_id = ?
		ORDER BY created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := []models.PortfolioAsset{}
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			log.Printf("Error al escanear posición del portafolio: %v", err)
			continue
		}
		assets = append(assets, asset)
	}

	return assets, rows.Err()
}

func (r *AssetRepository) GetAsset(userID, assetID string) (*models.PortfolioAsset, error) {
	query := `
		SELECT id, user_id, coin_id, coin_name, coin_symbol, quantity, purchase_price, created_at
		FROM portfolio_assets
		WHERE id = ? AND user_id = ?`

	row := r.db.QueryRow(query, assetID, userID)

	var (
		asset            models.PortfolioAsset
		quantityStr      string
		purchasePriceStr string
	)
	err := row.Scan(
		&asset.ID,
		&asset.UserID,
		&asset.CoinID,
		&asset.CoinName,
		&asset.CoinSymbol,
		&quantityStr,
		&purchasePriceStr,
		&asset.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, err
	}

	if asset.Quantity, err = decimal.NewFromString(quantityStr); err != nil {
		return nil, err
	}
	if asset.PurchasePrice, err = decimal.NewFromString(purchasePriceStr); err != nil {
		return nil, err
	}

	return &asset, nil
}

func (r *AssetRepository) DeleteAsset(userID, assetID string) error {
	result, err := r.db.Exec(`DELETE FROM portfolio_assets WHERE id = ? AND user_id = ?`, assetID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAssetNotFound
	}

	return nil
}

// GetUserIDsWithAssets devuelve los usuarios que tienen al menos una posición,
// para el job periódico de snapshots
func (r *AssetRepository) GetUserIDsWithAssets() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT user_id FROM portfolio_assets`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		userIDs = append(userIDs, userID)
	}

	return userIDs, rows.Err()
}

func scanAsset(rows *sql.Rows) (models.PortfolioAsset, error) {
	var (
		asset            models.PortfolioAsset
		quantityStr      string
		purchasePriceStr string
	)

	err := rows.Scan(
		&asset.ID,
		&asset.UserID,
		&asset.CoinID,
		&asset.CoinName,
		&asset.CoinSymbol,
		&quantityStr,
		&purchasePriceStr,
		&asset.CreatedAt,
	)
	if err != nil {
		return asset, err
	}

	if asset.Quantity, err = decimal.NewFromString(quantityStr); err != nil {
		return asset, err
	}
	asset.PurchasePrice, err = decimal.NewFromString(purchasePriceStr)
	return asset, err
}
