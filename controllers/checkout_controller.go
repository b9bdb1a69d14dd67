package controllers

import (
	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
	"storefront/store"
)

type CheckoutController struct {
	API      *services.APIClient
	Sessions *store.Sessions
	Catalog  *services.Catalog
}

// @Summary Get checkout view
// @Description Get the priced cart together with the user's saved addresses
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout [get]
func (ctrl *CheckoutController) GetCheckout(c *gin.Context) {
	ctx := apiContext(c)
	cart := ctrl.Sessions.Cart(c.GetString("session_id"))

	view := ctrl.Catalog.Resolve(ctx, cart.Entries())

	addresses, err := ctrl.API.ListAddresses(ctx)
	if err != nil {
		apiFailure(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Checkout retrieved",
		"data": gin.H{
			"cart":      view,
			"addresses": addresses,
		},
	})
}

// @Summary Place order
// @Description Create an order from the cart. payment_method_id comes from the hosted payment widget's tokenization; the cart is cleared once the commerce API accepts the order.
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) CreateOrder(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "payment_method_id is required"})
		return
	}

	cart := ctrl.Sessions.Cart(c.GetString("session_id"))
	entries := cart.Entries()
	if len(entries) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
		return
	}

	order, err := ctrl.API.CreateOrder(apiContext(c), req, entries)
	if err != nil {
		apiFailure(c, err)
		return
	}

	// The cart's lifecycle ends at a successful checkout.
	cart.Clear()

	c.JSON(201, gin.H{"success": true, "message": "Order placed", "data": order})
}
