package models

import "time"

// WatchlistItem representa una criptomoneda seguida por el usuario
type WatchlistItem struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	CoinID     string    `json:"coin_id"`
	CoinName   string    `json:"coin_name"`
	CoinSymbol string    `json:"coin_symbol"`
	CreatedAt  time.Time `json:"created_at"`
}
