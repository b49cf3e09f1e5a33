package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zelcry/zelcry-api/internal/services"
)

// GetNews devuelve las noticias recientes de criptomonedas
func GetNews(c *gin.Context) {
	limit := newsLimit(c)
	c.JSON(http.StatusOK, gin.H{"news": services.GetCryptoNews(limit)})
}

// GetNewsByCategory devuelve las noticias de una categoría
func GetNewsByCategory(c *gin.Context) {
	category := c.Param("category")
	limit := newsLimit(c)

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"news":     services.GetNewsByCategory(category, limit),
	})
}

// SearchNews busca noticias por palabra clave
func SearchNews(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Falta el parámetro de búsqueda 'q'"})
		return
	}

	limit := newsLimit(c)

	c.JSON(http.StatusOK, gin.H{
		"query": query,
		"news":  services.SearchNews(query, limit),
	})
}

func newsLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		return 20
	}
	return limit
}
