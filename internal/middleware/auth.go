package middleware

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/zelcry/zelcry-api/internal/database"
	"github.com/zelcry/zelcry-api/internal/models"
	"github.com/zelcry/zelcry-api/internal/repository"
	"github.com/zelcry/zelcry-api/internal/services"
	"golang.org/x/crypto/bcrypt"
)

// Repositorios compartidos por los handlers
var (
	userRepo      *repository.UserRepository
	profileRepo   *repository.ProfileRepository
	assetRepo     *repository.AssetRepository
	detailsRepo   *repository.DetailsRepository
	chatRepo      *repository.ChatRepository
	alertRepo     *repository.AlertRepository
	watchlistRepo *repository.WatchlistRepository
	snapshotRepo  *repository.SnapshotRepository
	advisor       *services.Advisor
)

// InitRepositories inicializa los repositorios con la conexión a la base de datos
func InitRepositories() {
	db := database.DB
	userRepo = repository.NewUserRepository(db)
	profileRepo = repository.NewProfileRepository(db)
	assetRepo = repository.NewAssetRepository(db)
	detailsRepo = repository.NewDetailsRepository(db)
	chatRepo = repository.NewChatRepository(db)
	alertRepo = repository.NewAlertRepository(db)
	watchlistRepo = repository.NewWatchlistRepository(db)
	snapshotRepo = repository.NewSnapshotRepository(db)
	advisor = services.NewAdvisor(detailsRepo)
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token no proporcionado"})
			c.Abort()
			return
		}

		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			c.Abort()
			return
		}

		claims := token.Claims.(jwt.MapClaims)
		c.Set("userId", claims["userId"])
		c.Next()
	}
}

func GenerateToken(userId string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userId,
		"exp":    time.Now().Add(time.Hour * 24).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func Signup(c *gin.Context) {
	var signup struct {
		Email         string `json:"email" binding:"required,email"`
		Password      string `json:"password" binding:"required,min=6"`
		Name          string `json:"name" binding:"required"`
		RiskTolerance string `json:"risk_tolerance"`
	}

	if err := c.ShouldBindJSON(&signup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Verificar si el email ya está registrado
	exists, err := userRepo.EmailExists(signup.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al verificar el email"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "El email ya está registrado"})
		return
	}

	riskTolerance := signup.RiskTolerance
	if riskTolerance == "" {
		riskTolerance = models.RiskLow
	}
	if !models.ValidRiskTolerance(riskTolerance) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tolerancia al riesgo inválida"})
		return
	}

	// Hash de la contraseña
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(signup.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al procesar la contraseña"})
		return
	}

	// Crear nuevo usuario con su perfil; el registro otorga los primeros XP
	user := &models.User{
		ID:       uuid.NewString(),
		Email:    signup.Email,
		Password: string(hashedPassword),
		Name:     signup.Name,
	}

	if err := userRepo.CreateUser(user, riskTolerance, services.XPSignup); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear usuario"})
		return
	}

	token, err := GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar el token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Registro exitoso",
		"token":     token,
		"xp_earned": services.XPSignup,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

func Login(c *gin.Context) {
	var login struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&login); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Verificar si el usuario existe
	user, err := userRepo.GetUserByEmail(login.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no encontrado"})
		return
	}

	// Verificar la contraseña
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(login.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Contraseña incorrecta"})
		return
	}

	token, err := GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar el token"})
		return
	}

	// Cada inicio de sesión suma experiencia
	awardXP(user.ID, services.XPLogin)

	c.JSON(http.StatusOK, gin.H{
		"message":   "Inicio de sesión exitoso",
		"token":     token,
		"xp_earned": services.XPLogin,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

func Logout(c *gin.Context) {
	// Con JWT el cierre de sesión es del lado del cliente: descartar el token
	c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
}

// awardXP suma puntos de experiencia sin interrumpir el flujo del handler:
// una falla al acreditar XP se registra pero no rompe la operación principal
func awardXP(userID string, points int) {
	if err := profileRepo.AddXP(userID, points); err != nil {
		log.Printf("Error al acreditar %d XP al usuario %s: %v", points, userID, err)
	}
}

// currentUserID obtiene el ID del usuario autenticado del contexto.
// Devuelve cadena vacía si el middleware de auth no corrió.
func currentUserID(c *gin.Context) string {
	userID, exists := c.Get("userId")
	if !exists {
		return ""
	}

	userIDStr, ok := userID.(string)
	if !ok {
		return ""
	}
	return userIDStr
}
