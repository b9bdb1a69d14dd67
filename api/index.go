package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"storefront/config"
	"storefront/middleware"
	"storefront/models"
	"storefront/routes"
	"storefront/services"
	"storefront/store"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		models.InitRedis()

		api := services.NewAPIClient(
			config.AppConfig.APIBaseURL,
			config.AppConfig.APITimeout,
			models.RedisClient,
			config.AppConfig.ProductCacheTTL,
		)

		// Serverless instances have no durable disk; the cart mirror
		// must live in Redis here. Without Redis carts are memory-only
		// and die with the instance.
		var sessions *store.Sessions
		if models.RedisClient != nil {
			sessions = store.NewSessions(store.RedisFactory(models.RedisClient))
		} else {
			sessions = store.NewSessions(nil)
		}

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, api, sessions)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
