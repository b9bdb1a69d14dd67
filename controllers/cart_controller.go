package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
	"storefront/store"
)

type CartController struct {
	Sessions *store.Sessions
	Catalog  *services.Catalog
}

func (ctrl *CartController) cart(c *gin.Context) *store.CartStore {
	return ctrl.Sessions.Cart(c.GetString("session_id"))
}

// @Summary Get cart
// @Description Get the session cart joined with product details and totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	view := ctrl.Catalog.Resolve(apiContext(c), ctrl.cart(c).Entries())

	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": view})
}

// @Summary Add cart item
// @Description Add a product to the cart, incrementing the quantity if it is already there
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Add Item Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	cart := ctrl.cart(c)
	if err := cart.Add(req.ProductID, quantity); err != nil {
		if errors.Is(err, store.ErrInvalidQuantity) {
			c.JSON(400, gin.H{"success": false, "message": "Quantity must be at least 1"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Item added", "data": cart.Entries()})
}

// @Summary Update cart item quantity
// @Description Set the quantity for a product; zero or negative removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body models.UpdateCartItemRequest true "Update Item Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{productId} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	cart := ctrl.cart(c)
	cart.SetQuantity(c.Param("productId"), *req.Quantity)

	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": cart.Entries()})
}

// @Summary Remove cart item
// @Description Remove a product from the cart; removing an absent product is a no-op
// @Tags Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cart := ctrl.cart(c)
	cart.Remove(c.Param("productId"))

	c.JSON(200, gin.H{"success": true, "message": "Item removed", "data": cart.Entries()})
}

// @Summary Clear cart
// @Description Empty the session cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.cart(c).Clear()

	c.JSON(200, gin.H{"success": true, "message": "Cart cleared"})
}
