package middleware

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zelcry/zelcry-api/internal/models"
	"github.com/zelcry/zelcry-api/internal/services"
)

// Cantidad de intercambios previos que se reenvían al modelo como contexto
const chatHistoryLimit = 5

// AdvisorQuery responde con el motor de reglas determinista, usando el
// portafolio y el perfil del usuario como contexto
func AdvisorQuery(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	var request struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := buildAdvisorRequest(userID, request.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := advisor.Answer(req)

	saveChatExchange(userID, "", request.Message, response)
	awardXP(userID, services.XPChat)

	c.JSON(http.StatusOK, gin.H{
		"response":  response,
		"xp_earned": services.XPChat,
	})
}

// Chat responde con el modelo de lenguaje, reenviando los últimos
// intercambios y un resumen del portafolio como contexto
func Chat(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	var request struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := buildAdvisorRequest(userID, request.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	history := []services.ChatTurn{}
	previous, err := chatRepo.GetRecentUserMessages(userID, chatHistoryLimit)
	if err == nil {
		for _, msg := range previous {
			history = append(history, services.ChatTurn{Message: msg.Message, Response: msg.Response})
		}
	}

	response := services.GetGroqResponse(request.Message, advisorContextInfo(req), history)

	saveChatExchange(userID, "", request.Message, response)
	awardXP(userID, services.XPChat)

	c.JSON(http.StatusOK, gin.H{
		"response":  response,
		"xp_earned": services.XPChat,
	})
}

// GuestChat permite probar el asesor sin registrarse, con una cuota de
// mensajes por sesión. Al agotarse la cuota se responde sin consultar el
// modelo y se invita a crear una cuenta.
func GuestChat(c *gin.Context) {
	var request struct {
		Message   string `json:"message" binding:"required"`
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	limit := guestChatLimit()
	count, err := chatRepo.CountSessionMessages(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al verificar la sesión"})
		return
	}

	if count >= limit {
		c.JSON(http.StatusOK, gin.H{
			"response":      "You've reached the free chat limit! 🚀 Sign up for Zelcry to get unlimited AI advice, track your portfolio, and earn XP rewards!",
			"session_id":    sessionID,
			"limit_reached": true,
			"messages_left": 0,
		})
		return
	}

	contextInfo := "The user is a guest trying out Zelcry. Encourage them to sign up to unlock portfolio tracking and personalized advice."
	response := services.GetGroqResponse(request.Message, contextInfo, nil)

	saveChatExchange("", sessionID, request.Message, response)

	c.JSON(http.StatusOK, gin.H{
		"response":      response,
		"session_id":    sessionID,
		"limit_reached": false,
		"messages_left": limit - count - 1,
	})
}

// buildAdvisorRequest arma el contexto del usuario para el asesor
func buildAdvisorRequest(userID, message string) (services.AdvisorRequest, error) {
	req := services.AdvisorRequest{Message: message}

	user, err := userRepo.GetUserById(userID)
	if err != nil {
		return req, err
	}
	req.UserName = user.Name

	profile, err := profileRepo.GetProfile(userID)
	if err != nil {
		return req, err
	}
	req.RiskTolerance = profile.RiskTolerance
	req.XPPoints = profile.XPPoints

	assets, err := assetRepo.GetUserAssets(userID)
	if err != nil {
		return req, err
	}
	req.Assets = assets

	return req, nil
}

// advisorContextInfo resume el perfil y las tenencias para el prompt del modelo
func advisorContextInfo(req services.AdvisorRequest) string {
	holdings := "none yet"
	if len(req.Assets) > 0 {
		names := make([]string, 0, len(req.Assets))
		for _, asset := range req.Assets {
			names = append(names, fmt.Sprintf("%s (%s)", asset.CoinName, asset.Quantity.String()))
		}
		holdings = strings.Join(names, ", ")
	}

	return fmt.Sprintf("User: %s. Risk tolerance: %s. XP points: %d. Portfolio holdings: %s.",
		req.UserName, req.RiskTolerance, req.XPPoints, holdings)
}

// saveChatExchange persiste el intercambio sin interrumpir la respuesta
func saveChatExchange(userID, sessionID, message, response string) {
	err := chatRepo.SaveMessage(&models.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		SessionID: sessionID,
		Message:   message,
		Response:  response,
	})
	if err != nil {
		// Se registra pero no se propaga: el usuario ya tiene su respuesta
		log.Printf("Error al guardar el mensaje de chat: %v", err)
	}
}

// guestChatLimit lee la cuota de mensajes para invitados, con un valor por defecto
func guestChatLimit() int {
	value := os.Getenv("GUEST_CHAT_LIMIT")
	if value == "" {
		return 3
	}

	limit, err := strconv.Atoi(value)
	if err != nil || limit <= 0 {
		return 3
	}
	return limit
}
