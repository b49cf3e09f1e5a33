package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/zelcry/zelcry-api/internal/models"
)

var ErrAlreadyWatched = errors.New("la moneda ya está en la watchlist")

// WatchlistRepository maneja las monedas seguidas por cada usuario
type WatchlistRepository struct {
	db *sql.DB
}

func NewWatchlistRepository(db *sql.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

func (r *WatchlistRepository) AddItem(item *models.WatchlistItem) error {
	query := `
		INSERT INTO watchlist (id, user_id, coin_id, coin_name, coin_symbol)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query, item.ID, item.UserID, item.CoinID, item.CoinName, item.CoinSymbol)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrAlreadyWatched
	}
	return err
}

func (r *WatchlistRepository) GetUserWatchlist(userID string) ([]models.WatchlistItem, error) {
	query := `
		SELECT id, user_id, coin_id, coin_name, coin_symbol, created_at
		FROM watchlist
		WHERE user_id = ?
		ORDER BY created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.WatchlistItem{}
	for rows.Next() {
		var item models.WatchlistItem
		err := rows.Scan(&item.ID, &item.UserID, &item.CoinID, &item.CoinName, &item.CoinSymbol, &item.CreatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *WatchlistRepository) RemoveItem(userID, coinID string) error {
	_, err := r.db.Exec(`DELETE FROM watchlist WHERE user_id = ? AND coin_id = ?`, userID, coinID)
	return err
}
