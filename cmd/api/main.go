package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/zelcry/zelcry-api/internal/database"
	"github.com/zelcry/zelcry-api/internal/middleware"
	"github.com/zelcry/zelcry-api/internal/repository"
	routes "github.com/zelcry/zelcry-api/internal/server"
	"github.com/zelcry/zelcry-api/internal/services"
)

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("No se pudo cargar el archivo .env: %v", err)
	}

	// Crear el router de Gin
	router := gin.Default()

	// Configurar CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = true
	config.ExposeHeaders = []string{"Content-Length"}
	router.Use(cors.New(config))

	// Inicializar base de datos
	if err := database.InitDB(); err != nil {
		log.Fatalf("Error al inicializar la base de datos: %v", err)
	}
	defer database.DB.Close()

	// Inicializar repositorios
	middleware.InitRepositories()

	// Sembrar los datos de impacto y programar el reseed periódico
	seedService := services.NewSeedService(repository.NewDetailsRepository(database.DB))
	if err := seedService.Start(os.Getenv("RESEED_SCHEDULE")); err != nil {
		log.Fatalf("Error al programar el reseed de datos de impacto: %v", err)
	}
	defer seedService.Stop()

	// Iniciar el evaluador de alertas de precio (cada 60 segundos)
	alertEvaluator := services.NewAlertEvaluator(60*time.Second, repository.NewAlertRepository(database.DB))
	alertEvaluator.Start()
	defer alertEvaluator.Stop()

	// Programar el snapshot diario de portafolios
	snapshotService := services.NewSnapshotService(repository.NewSnapshotStore(database.DB))
	if err := snapshotService.Start(); err != nil {
		log.Fatalf("Error al programar el job de snapshots: %v", err)
	}
	defer snapshotService.Stop()

	// Hacer disponible el servicio de snapshots para los handlers
	middleware.SetSnapshotService(snapshotService)

	// Configurar las rutas
	routes.RegisterRoutes(router)

	// Iniciar el servidor
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
