package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zelcry/zelcry-api/internal/models"
	"github.com/zelcry/zelcry-api/internal/repository"
	"github.com/zelcry/zelcry-api/internal/services"
)

// AddToWatchlist agrega una moneda a la watchlist del usuario y otorga XP
func AddToWatchlist(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	var request struct {
		CoinID     string `json:"coin_id" binding:"required"`
		CoinName   string `json:"coin_name" binding:"required"`
		CoinSymbol string `json:"coin_symbol" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := &models.WatchlistItem{
		ID:         uuid.NewString(),
		UserID:     userID,
		CoinID:     request.CoinID,
		CoinName:   request.CoinName,
		CoinSymbol: request.CoinSymbol,
	}

	if err := watchlistRepo.AddItem(item); err != nil {
		if err == repository.ErrAlreadyWatched {
			c.JSON(http.StatusConflict, gin.H{"error": "La moneda ya está en la watchlist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al agregar a la watchlist"})
		return
	}

	awardXP(userID, services.XPWatchlist)

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Moneda agregada a la watchlist",
		"item":      item,
		"xp_earned": services.XPWatchlist,
	})
}

// GetWatchlist devuelve las monedas seguidas con sus precios actuales
func GetWatchlist(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	items, err := watchlistRepo.GetUserWatchlist(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	coinIDs := make([]string, 0, len(items))
	for _, item := range items {
		coinIDs = append(coinIDs, item.CoinID)
	}
	prices := services.GetSimplePrices(coinIDs)

	type watchedCoin struct {
		models.WatchlistItem
		CurrentPrice   float64 `json:"current_price"`
		PriceChange24h float64 `json:"price_change_24h"`
	}

	watchlist := make([]watchedCoin, 0, len(items))
	for _, item := range items {
		coin := watchedCoin{WatchlistItem: item}
		if price, exists := prices[item.CoinID]; exists {
			coin.CurrentPrice = price.USD
			coin.PriceChange24h = price.USD24hChange
		}
		watchlist = append(watchlist, coin)
	}

	c.JSON(http.StatusOK, gin.H{"watchlist": watchlist})
}

// RemoveFromWatchlist quita una moneda de la watchlist
func RemoveFromWatchlist(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	coinID := c.Param("coin_id")

	if err := watchlistRepo.RemoveItem(userID, coinID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al quitar de la watchlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Moneda quitada de la watchlist"})
}
