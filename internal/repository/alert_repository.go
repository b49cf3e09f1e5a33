package repository

import (
	"database/sql"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zelcry/zelcry-api/internal/models"
)

// AlertRepository maneja las alertas de precio
type AlertRepository struct {
	db *sql.DB
}

func NewAlertRepository(db *sql.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) CreateAlert(alert *models.PriceAlert) error {
	query := `
		INSERT INTO price_alerts (id, user_id, coin_id, coin_name, coin_symbol, target_price, condition, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1)`

	_, err := r.db.Exec(
		query,
		alert.ID,
		alert.UserID,
		alert.CoinID,
		alert.CoinName,
		alert.CoinSymbol,
		alert.TargetPrice.String(),
		alert.Condition,
	)
	return err
}

// GetUserAlerts obtiene todas las alertas del usuario, las más recientes primero
func (r *AlertRepository) GetUserAlerts(userID string) ([]models.PriceAlert, error) {
	query := `
		SELECT id, user_id, coin_id, coin_name, coin_symbol, target_price, condition, is_active, triggered_at, created_at
		FROM price_alerts
		WHERE user_id = ?
		ORDER BY created_at DESC`

	return r.queryAlerts(query, userID)
}

// GetActiveAlerts obtiene todas las alertas activas de todos los usuarios,
// para el evaluador periódico
func (r *AlertRepository) GetActiveAlerts() ([]models.PriceAlert, error) {
	query := `
		SELECT id, user_id, coin_id, coin_name, coin_symbol, target_price, condition, is_active, triggered_at, created_at
		FROM price_alerts
		WHERE is_active = 1`

	return r.queryAlerts(query)
}

// MarkTriggered pasa la alerta de activa a disparada. La condición
// is_active = 1 garantiza que la transición ocurra una sola vez: una alerta
// disparada nunca vuelve al conjunto activo.
func (r *AlertRepository) MarkTriggered(alertID string, triggeredAt time.Time) error {
	query := `
		UPDATE price_alerts
		SET is_active = 0, triggered_at = ?
		WHERE id = ? AND is_active = 1`

	result, err := r.db.Exec(query, triggeredAt, alertID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlertNotFound
	}

	return nil
}

func (r *AlertRepository) DeleteAlert(userID, alertID string) error {
	result, err := r.db.Exec(`DELETE FROM price_alerts WHERE id = ? AND user_id = ?`, alertID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlertNotFound
	}

	return nil
}

func (r *AlertRepository) queryAlerts(query string, args ...interface{}) ([]models.PriceAlert, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := []models.PriceAlert{}
	for rows.Next() {
		var (
			alert          models.PriceAlert
			targetPriceStr string
			triggeredAt    sql.NullTime
		)

		err := rows.Scan(
			&alert.ID,
			&alert.UserID,
			&alert.CoinID,
			&alert.CoinName,
			&alert.CoinSymbol,
			&targetPriceStr,
			&alert.Condition,
			&alert.IsActive,
			&triggeredAt,
			&alert.CreatedAt,
		)
		if err != nil {
			log.Printf("Error al escanear alerta de precio: %v", err)
			continue
		}

		if alert.TargetPrice, err = decimal.NewFromString(targetPriceStr); err != nil {
			log.Printf("Precio objetivo inválido en la alerta %s: %v", alert.ID, err)
			continue
		}

		if triggeredAt.Valid {
			alert.TriggeredAt = &triggeredAt.Time
		}

		alerts = append(alerts, alert)
	}

	return alerts, rows.Err()
}
