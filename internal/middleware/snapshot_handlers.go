package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zelcry/zelcry-api/internal/services"
)

var snapshotService *services.SnapshotService

// SetSnapshotService inyecta el servicio de snapshots para los handlers
func SetSnapshotService(service *services.SnapshotService) {
	snapshotService = service
}

// CreateSnapshot toma un snapshot del portafolio a pedido del usuario
func CreateSnapshot(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	if snapshotService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Servicio de snapshots no disponible"})
		return
	}

	snapshot, err := snapshotService.TakeSnapshot(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al tomar el snapshot"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Snapshot guardado",
		"snapshot": snapshot,
	})
}

// GetSnapshots devuelve el historial de snapshots del período pedido
func GetSnapshots(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	period := c.DefaultQuery("period", "30d")
	since := periodStart(period)

	snapshots, err := snapshotRepo.GetUserSnapshots(userID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"period":    period,
		"snapshots": snapshots,
	})
}

// periodStart traduce el período pedido a la fecha de corte. Un período
// desconocido cae en los últimos 30 días.
func periodStart(period string) time.Time {
	now := time.Now()

	switch period {
	case "7d":
		return now.AddDate(0, 0, -7)
	case "30d":
		return now.AddDate(0, 0, -30)
	case "90d":
		return now.AddDate(0, 0, -90)
	case "1y":
		return now.AddDate(-1, 0, 0)
	case "all":
		return time.Time{}
	default:
		return now.AddDate(0, 0, -30)
	}
}
