package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zelcry/zelcry-api/internal/models"
	"github.com/zelcry/zelcry-api/internal/repository"
	"github.com/zelcry/zelcry-api/internal/services"
)

// CreateAsset agrega una posición al portafolio del usuario y otorga XP
func CreateAsset(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	var request struct {
		CoinID        string `json:"coin_id" binding:"required"`
		CoinName      string `json:"coin_name" binding:"required"`
		CoinSymbol    string `json:"coin_symbol" binding:"required"`
		Quantity      string `json:"quantity" binding:"required"`
		PurchasePrice string `json:"purchase_price" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Cantidad y precio llegan como texto y se validan como decimales no negativos
	quantity, err := decimal.NewFromString(request.Quantity)
	if err != nil || quantity.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cantidad inválida"})
		return
	}

	purchasePrice, err := decimal.NewFromString(request.PurchasePrice)
	if err != nil || purchasePrice.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Precio de compra inválido"})
		return
	}

	asset := &models.PortfolioAsset{
		ID:            uuid.NewString(),
		UserID:        userID,
		CoinID:        request.CoinID,
		CoinName:      request.CoinName,
		CoinSymbol:    request.CoinSymbol,
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
	}

	if err := assetRepo.CreateAsset(asset); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar la posición"})
		return
	}

	awardXP(userID, services.XPAddAsset)

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Posición agregada al portafolio",
		"asset":     asset,
		"xp_earned": services.XPAddAsset,
	})
}

// GetPortfolio devuelve las posiciones del usuario valuadas con los precios
// actuales, junto con los totales agregados
func GetPortfolio(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	assets, err := assetRepo.GetUserAssets(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	valuations, summary := valuateUserAssets(assets)

	c.JSON(http.StatusOK, gin.H{
		"portfolio": valuations,
		"summary":   summary,
	})
}

// DeleteAsset elimina una posición del portafolio
func DeleteAsset(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	assetID := c.Param("id")

	if err := assetRepo.DeleteAsset(userID, assetID); err != nil {
		if err == repository.ErrAssetNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Posición no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Posición eliminada"})
}

// valuateUserAssets junta los coin ids, pide los precios en una sola llamada
// y valúa el portafolio. También completa el impact score de cada posición.
func valuateUserAssets(assets []models.PortfolioAsset) ([]models.AssetValuation, models.PortfolioSummary) {
	coinIDs := make([]string, 0, len(assets))
	for _, asset := range assets {
		coinIDs = append(coinIDs, asset.CoinID)
	}

	prices := services.GetSimplePrices(coinIDs)
	valuations, summary := services.ValuatePortfolio(assets, prices)

	// Completar el impact score: la ausencia de perfil significa "sin puntaje"
	for i := range valuations {
		details, err := detailsRepo.GetDetails(valuations[i].Asset.CoinID)
		if err != nil || details == nil {
			continue
		}
		score := details.ImpactScore()
		valuations[i].ImpactScore = &score
	}

	return valuations, summary
}
