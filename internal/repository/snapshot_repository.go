package repository

import (
	"database/sql"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zelcry/zelcry-api/internal/models"
)

// SnapshotRepository guarda los registros inmutables del valor del portafolio
type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// SnapshotStore combina el repositorio de posiciones con el de snapshots,
// que es lo que necesita el job periódico
type SnapshotStore struct {
	*AssetRepository
	*SnapshotRepository
}

func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{
		AssetRepository:    NewAssetRepository(db),
		SnapshotRepository: NewSnapshotRepository(db),
	}
}

func (r *SnapshotRepository) SaveSnapshot(snapshot models.PortfolioSnapshot) error {
	query := `
		INSERT INTO portfolio_snapshots (id, user_id, total_value, total_invested, profit_loss, roi, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	createdAt := snapshot.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.Exec(
		query,
		snapshot.ID,
		snapshot.UserID,
		snapshot.TotalValue.String(),
		snapshot.TotalInvested.String(),
		snapshot.ProfitLoss.String(),
		snapshot.ROI.String(),
		createdAt,
	)
	return err
}

// GetUserSnapshots obtiene el historial de snapshots desde una fecha, en orden cronológico
func (r *SnapshotRepository) GetUserSnapshots(userID string, since time.Time) ([]models.PortfolioSnapshot, error) {
	query := `
		SELECT id, user_id, total_value, total_invested, profit_loss, roi, created_at
		FROM portfolio_snapshots
		WHERE user_id = ? AND created_at >= ?
		ORDER BY created_at ASC`

	rows, err := r.db.Query(query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := []models.PortfolioSnapshot{}
	for rows.Next() {
		var (
			snapshot      models.PortfolioSnapshot
			totalValue    string
			totalInvested string
			profitLoss    string
			roi           string
		)

		err := rows.Scan(
			&snapshot.ID,
			&snapshot.UserID,
			&totalValue,
			&totalInvested,
			&profitLoss,
			&roi,
			&snapshot.CreatedAt,
		)
		if err != nil {
			log.Printf("Error al escanear snapshot: %v", err)
			continue
		}

		if snapshot.TotalValue, err = decimal.NewFromString(totalValue); err != nil {
			continue
		}
		if snapshot.TotalInvested, err = decimal.NewFromString(totalInvested); err != nil {
			continue
		}
		if snapshot.ProfitLoss, err = decimal.NewFromString(profitLoss); err != nil {
			continue
		}
		if snapshot.ROI, err = decimal.NewFromString(roi); err != nil {
			continue
		}

		snapshots = append(snapshots, snapshot)
	}

	return snapshots, rows.Err()
}
