package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"storefront/config"
	"storefront/services"
)

type OrderController struct {
	API *services.APIClient
}

var orderStatusUpgrader = websocket.Upgrader{
	// Cross-origin policy is handled by the CORS middleware on the REST
	// surface; the browser client connects from the configured origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary List orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	orders, err := ctrl.API.ListOrders(apiContext(c))
	if err != nil {
		apiFailure(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

// @Summary Get order by ID
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	order, err := ctrl.API.GetOrder(apiContext(c), c.Param("id"))
	if err != nil {
		apiFailure(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}

// @Summary Live order status
// @Description WebSocket relay of the commerce API's order status channel; each message is {"status": "..."}
// @Tags Orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Router /orders/{id}/status [get]
func (ctrl *OrderController) StreamOrderStatus(c *gin.Context) {
	cfg := config.AppConfig
	base := cfg.WSBaseURL
	if base == "" {
		base = cfg.APIBaseURL
	}

	upstream, err := services.DialOrderStatus(c.Request.Context(), base, c.Param("id"), c.GetString("api_token"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Order status stream unavailable"})
		return
	}
	defer upstream.Close()

	client, err := orderStatusUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("order status: upgrade failed:", err)
		return
	}
	defer client.Close()

	for {
		update, err := upstream.Next()
		if err != nil {
			return
		}
		if err := client.WriteJSON(update); err != nil {
			return
		}
	}
}
