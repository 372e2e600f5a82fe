package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hajruuudin/life-line/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type CallbackInput struct {
	Code string `json:"code" binding:"required"`
}

// GoogleLogin returns the provider authorization URL for the frontend to
// redirect to.
func (ctrl *AuthController) GoogleLogin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"auth_url": ctrl.auth.GoogleLoginURL()})
}

// GoogleCallback exchanges the authorization code and issues the local
// session token.
func (ctrl *AuthController) GoogleCallback(c *gin.Context) {
	var input CallbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessToken, user, err := ctrl.auth.HandleCallback(c.Request.Context(), input.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": accessToken,
		"token_type":   "bearer",
		"user":         user,
	})
}
