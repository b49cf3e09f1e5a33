package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zelcry/zelcry-api/internal/models"
	"github.com/zelcry/zelcry-api/internal/repository"
	"github.com/zelcry/zelcry-api/internal/services"
)

// GetProfile devuelve el perfil del usuario con su nivel de gamificación
func GetProfile(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	user, err := userRepo.GetUserById(userID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	profile, err := profileRepo.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":           user,
		"risk_tolerance": profile.RiskTolerance,
		"theme":          profile.Theme,
		"level":          services.LevelForXP(profile.XPPoints),
	})
}

// UpdateUser actualiza el nombre y el email del usuario autenticado
func UpdateUser(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	var request struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		ID:    userID,
		Email: request.Email,
		Name:  request.Name,
	}

	if err := userRepo.UpdateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Usuario actualizado",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// DeleteUser elimina la cuenta y todos sus datos asociados
func DeleteUser(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	if err := userRepo.DeleteUser(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cuenta eliminada"})
}

// UpdateRiskTolerance cambia la tolerancia al riesgo del perfil
func UpdateRiskTolerance(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	var request struct {
		RiskTolerance string `json:"risk_tolerance" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidRiskTolerance(request.RiskTolerance) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tolerancia al riesgo inválida"})
		return
	}

	if err := profileRepo.UpdateRiskTolerance(userID, request.RiskTolerance); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el perfil"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Tolerancia al riesgo actualizada",
		"risk_tolerance": request.RiskTolerance,
	})
}

// ToggleTheme alterna el tema de la interfaz entre claro y oscuro
func ToggleTheme(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	profile, err := profileRepo.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	theme := "dark"
	if profile.Theme == "dark" {
		theme = "light"
	}

	if err := profileRepo.UpdateTheme(userID, theme); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el tema"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tema actualizado",
		"theme":   theme,
	})
}
