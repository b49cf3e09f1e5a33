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

// CreateAlert registra una alerta de precio de un solo disparo y otorga XP
func CreateAlert(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	var request struct {
		CoinID      string `json:"coin_id" binding:"required"`
		CoinName    string `json:"coin_name" binding:"required"`
		CoinSymbol  string `json:"coin_symbol" binding:"required"`
		TargetPrice string `json:"target_price" binding:"required"`
		Condition   string `json:"condition" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Condition != models.AlertConditionAbove && request.Condition != models.AlertConditionBelow {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La condición debe ser 'above' o 'below'"})
		return
	}

	targetPrice, err := decimal.NewFromString(request.TargetPrice)
	if err != nil || !targetPrice.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Precio objetivo inválido"})
		return
	}

	alert := &models.PriceAlert{
		ID:          uuid.NewString(),
		UserID:      userID,
		CoinID:      request.CoinID,
		CoinName:    request.CoinName,
		CoinSymbol:  request.CoinSymbol,
		TargetPrice: targetPrice,
		Condition:   request.Condition,
		IsActive:    true,
	}

	if err := alertRepo.CreateAlert(alert); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la alerta"})
		return
	}

	awardXP(userID, services.XPCreateAlert)

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Alerta creada",
		"alert":     alert,
		"xp_earned": services.XPCreateAlert,
	})
}

// GetAlerts devuelve todas las alertas del usuario, activas y disparadas
func GetAlerts(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	alerts, err := alertRepo.GetUserAlerts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// DeleteAlert elimina una alerta del usuario
func DeleteAlert(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	alertID := c.Param("id")

	if err := alertRepo.DeleteAlert(userID, alertID); err != nil {
		if err == repository.ErrAlertNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alerta no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Alerta eliminada"})
}
