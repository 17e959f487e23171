package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"diettracker/middlewares"
	"diettracker/models"
	"diettracker/services"
)

type AuthController struct {
	auth   *services.AuthService
	tokens *services.TokenService
}

func NewAuthController(auth *services.AuthService, tokens *services.TokenService) *AuthController {
	return &AuthController{auth: auth, tokens: tokens}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	user, err := ctrl.auth.Register(input.Email, input.Password, input.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    userSummary(user),
	})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or password"})
		return
	}

	user, err := ctrl.auth.Authenticate(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := ctrl.tokens.Issue(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    userSummary(user),
	})
}

// Me returns the authenticated caller's profile.
func (ctrl *AuthController) Me(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"user": userSummary(user)})
}

func userSummary(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	}
}
