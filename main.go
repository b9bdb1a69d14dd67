package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"storefront/config"
	_ "storefront/docs"
	"storefront/middleware"
	"storefront/models"
	"storefront/routes"
	"storefront/services"
	"storefront/store"
)

// @title Storefront API
// @description BFF for the web storefront: session carts, catalogue, checkout, and account pages over the commerce API
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitRedis()
	defer models.CloseRedis()

	api := services.NewAPIClient(
		config.AppConfig.APIBaseURL,
		config.AppConfig.APITimeout,
		models.RedisClient,
		config.AppConfig.ProductCacheTTL,
	)

	var sessions *store.Sessions
	if models.RedisClient != nil {
		sessions = store.NewSessions(store.RedisFactory(models.RedisClient))
		log.Println("Cart persistence: redis")
	} else {
		sessions = store.NewSessions(store.FileFactory(config.AppConfig.CartDir))
		log.Printf("Cart persistence: %s", config.AppConfig.CartDir)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, api, sessions)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
