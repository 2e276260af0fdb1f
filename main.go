// @title ConsultBI Dashboard API
// @version 1.0
// @description Sales analytics API for the ConsultBI dashboard, backed by Airtable
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/airtable"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/config"
	_ "github.com/ConsultBI/Dashboard-ConsultBI-Ventas/docs"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/middleware"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/routes/dashboard_routes"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis connection (rate limiting)
	config.ConnectRedis()

	// Initialize Airtable-backed snapshot service
	airtableClient, err := airtable.NewClient()
	if err != nil {
		log.Fatalf("Failed to initialize Airtable client: %v", err)
	}
	services.InitSnapshotService(airtableClient)
	log.Println("✅ Snapshot service initialized")

	// Gemini is optional; insights endpoints return 503 when it is not configured
	services.InitGeminiService()

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	dashboardGroup := api.Group("/dashboard")
	dashboardGroup.Use(middleware.RateLimiter(100, time.Minute))
	dashboard_routes.SetupDataRoutes(dashboardGroup)
	dashboard_routes.SetupAnalyticsRoutes(dashboardGroup)
	dashboard_routes.SetupCustomerRoutes(dashboardGroup)
	dashboard_routes.SetupProductRoutes(dashboardGroup)
	dashboard_routes.SetupInsightsRoutes(dashboardGroup)
	log.Println("✅ Dashboard routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	router.Run(":" + port)
}
