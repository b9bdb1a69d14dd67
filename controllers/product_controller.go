package controllers

import (
	"github.com/gin-gonic/gin"

	"storefront/services"
)

type ProductController struct {
	API *services.APIClient
}

// @Summary List products
// @Description Get the product catalogue from the commerce API
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.API.ListProducts(apiContext(c))
	if err != nil {
		apiFailure(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Products retrieved", "data": products})
}

// @Summary Get product by ID
// @Description Get product details
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.API.GetProduct(apiContext(c), c.Param("id"))
	if err != nil {
		apiFailure(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}
