package controllers

import (
	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/services"
)

type AccountController struct {
	API *services.APIClient
}

// @Summary List addresses
// @Tags Account
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /addresses [get]
func (ctrl *AccountController) ListAddresses(c *gin.Context) {
	addresses, err := ctrl.API.ListAddresses(apiContext(c))
	if err != nil {
		apiFailure(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Addresses retrieved", "data": addresses})
}

// @Summary Create address
// @Tags Account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddressRequest true "Address Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /addresses [post]
func (ctrl *AccountController) CreateAddress(c *gin.Context) {
	var req models.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	address, err := ctrl.API.CreateAddress(apiContext(c), req)
	if err != nil {
		apiFailure(c, err)
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Address created", "data": address})
}

// @Summary Update address
// @Tags Account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Address ID"
// @Param request body models.AddressRequest true "Address Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /addresses/{id} [put]
func (ctrl *AccountController) UpdateAddress(c *gin.Context) {
	var req models.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	address, err := ctrl.API.UpdateAddress(apiContext(c), c.Param("id"), req)
	if err != nil {
		apiFailure(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Address updated", "data": address})
}

// @Summary Delete address
// @Tags Account
// @Security BearerAuth
// @Produce json
// @Param id path string true "Address ID"
// @Success 200 {object} models.Response
// @Router /addresses/{id} [delete]
func (ctrl *AccountController) DeleteAddress(c *gin.Context) {
	if err := ctrl.API.DeleteAddress(apiContext(c), c.Param("id")); err != nil {
		apiFailure(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Address deleted"})
}

// @Summary Get profile
// @Tags Account
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /profile [get]
func (ctrl *AccountController) GetProfile(c *gin.Context) {
	profile, err := ctrl.API.GetProfile(apiContext(c))
	if err != nil {
		apiFailure(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile retrieved", "data": profile})
}

// @Summary Update profile
// @Tags Account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Profile Request"
// @Success 200 {object} models.Response
// @Router /profile [patch]
func (ctrl *AccountController) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	profile, err := ctrl.API.UpdateProfile(apiContext(c), req)
	if err != nil {
		apiFailure(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile updated", "data": profile})
}
