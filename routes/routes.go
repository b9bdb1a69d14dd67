package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/controllers"
	"storefront/middleware"
	"storefront/services"
	"storefront/store"
)

func SetupRoutes(router *gin.Engine, api *services.APIClient, sessions *store.Sessions) {
	catalog := services.NewCatalog(api)

	productCtrl := &controllers.ProductController{API: api}
	cartCtrl := &controllers.CartController{Sessions: sessions, Catalog: catalog}
	checkoutCtrl := &controllers.CheckoutController{API: api, Sessions: sessions, Catalog: catalog}
	authCtrl := controllers.NewAuthController(api)
	accountCtrl := &controllers.AccountController{API: api}
	orderCtrl := &controllers.OrderController{API: api}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.Use(middleware.SessionMiddleware())

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	router.GET("/cart", cartCtrl.GetCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.PATCH("/cart/items/:productId", cartCtrl.UpdateItem)
	router.DELETE("/cart/items/:productId", cartCtrl.RemoveItem)
	router.DELETE("/cart", cartCtrl.ClearCart)

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/logout", authCtrl.Logout)
	router.GET("/auth/oauth/login", authCtrl.OAuthLogin)
	router.GET("/auth/oauth/callback", authCtrl.OAuthCallback)

	auth := router.Group("/")
	auth.Use(middleware.RequireAuth())
	{
		auth.GET("/checkout", checkoutCtrl.GetCheckout)
		auth.POST("/checkout", checkoutCtrl.CreateOrder)

		auth.GET("/addresses", accountCtrl.ListAddresses)
		auth.POST("/addresses", accountCtrl.CreateAddress)
		auth.PUT("/addresses/:id", accountCtrl.UpdateAddress)
		auth.DELETE("/addresses/:id", accountCtrl.DeleteAddress)

		auth.GET("/profile", accountCtrl.GetProfile)
		auth.PATCH("/profile", accountCtrl.UpdateProfile)

		auth.GET("/orders", orderCtrl.ListOrders)
		auth.GET("/orders/:id", orderCtrl.GetOrder)
		auth.GET("/orders/:id/status", orderCtrl.StreamOrderStatus)
	}
}
