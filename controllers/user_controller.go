package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ak1058/Ai-Recipe-Maker/schemas"
	"github.com/ak1058/Ai-Recipe-Maker/services"
)

type UserController struct {
	auth *services.AuthService
}

func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{auth: auth}
}

// Signup handles POST /users/signup.
func (ctl *UserController) Signup(c *gin.Context) {
	var req schemas.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.auth.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, schemas.NewUserOut(user))
}

// Login handles POST /users/login.
func (ctl *UserController) Login(c *gin.Context) {
	var req schemas.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := ctl.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schemas.LoginResponse{
		AccessToken: token,
		User:        schemas.NewUserOut(user),
	})
}
