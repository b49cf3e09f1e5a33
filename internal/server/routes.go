package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/zelcry/zelcry-api/internal/middleware"
)

func RegisterRoutes(router *gin.Engine) {
	// Rutas públicas: registro, login y datos de mercado
	router.POST("/signup", middleware.Signup)
	router.POST("/login", middleware.Login)
	router.POST("/logout", middleware.Logout)

	// El chat de invitados no requiere cuenta; tiene cuota por sesión
	router.POST("/guest-chat", middleware.GuestChat)

	router.GET("/markets", middleware.GetMarkets)
	router.GET("/coins/:coin_id", middleware.GetCoinDetails)

	router.GET("/news", middleware.GetNews)
	router.GET("/news/search", middleware.SearchNews)
	router.GET("/news/category/:category", middleware.GetNewsByCategory)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", middleware.GetProfile)
		protected.PUT("/users", middleware.UpdateUser)
		protected.DELETE("/users", middleware.DeleteUser)
		protected.PUT("/profile/risk-tolerance", middleware.UpdateRiskTolerance)
		protected.POST("/profile/theme", middleware.ToggleTheme)

		protected.GET("/dashboard", middleware.GetDashboard)

		protected.POST("/portfolio", middleware.CreateAsset)
		protected.GET("/portfolio", middleware.GetPortfolio)
		protected.DELETE("/portfolio/:id", middleware.DeleteAsset)
		protected.GET("/portfolio/analytics", middleware.GetPortfolioAnalytics)

		protected.POST("/snapshots", middleware.CreateSnapshot)
		protected.GET("/snapshots", middleware.GetSnapshots)

		protected.POST("/watchlist", middleware.AddToWatchlist)
		protected.GET("/watchlist", middleware.GetWatchlist)
		protected.DELETE("/watchlist/:coin_id", middleware.RemoveFromWatchlist)

		protected.POST("/alerts", middleware.CreateAlert)
		protected.GET("/alerts", middleware.GetAlerts)
		protected.DELETE("/alerts/:id", middleware.DeleteAlert)

		protected.GET("/insights", middleware.GetMarketInsights)

		protected.POST("/advisor", middleware.AdvisorQuery)
		protected.POST("/chat", middleware.Chat)
	}
}
