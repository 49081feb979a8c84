package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"haircare-web/backend"
	"haircare-web/cart"
	"haircare-web/pkg/logging"
	"haircare-web/session"
	"haircare-web/utils"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// AuthController forwards credentials to the backend and keeps only the
// returned bearer token, in the browser session.
type AuthController struct {
	API      *backend.Client
	Sessions *session.Manager
	Carts    *cart.Stores
	Logger   *logging.Logger
}

// Login exchanges credentials for a token and stores it in the session.
func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	token, err := a.API.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithError(c, http.StatusBadGateway, "Login failed")
		return
	}

	if err := a.Sessions.Login(c.Writer, c.Request, token); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to persist session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":     session.RoleFromToken(token),
		"redirect": "/",
	})
}

// Register creates an account and logs the session in when the backend
// returns a token right away.
func (a *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	token, err := a.API.Register(c.Request.Context(), backend.RegisterRequest{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
			utils.RespondWithError(c, http.StatusConflict, "Email already registered")
			return
		}
		utils.RespondWithError(c, http.StatusBadGateway, "Registration failed")
		return
	}

	if token != "" {
		if err := a.Sessions.Login(c.Writer, c.Request, token); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to persist session")
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"redirect": "/"})
}

// Logout clears the credential and the cart mirror, then sends the browser
// home.
func (a *AuthController) Logout(c *gin.Context) {
	token := a.Sessions.Token(c.Request)
	if token != "" {
		a.Carts.Drop(session.UserIDFromToken(token))
	}
	if err := a.Sessions.Logout(c.Writer, c.Request); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/"})
}

// Me reports the session's authentication state and role for the view.
func (a *AuthController) Me(c *gin.Context) {
	token := a.Sessions.Token(c.Request)
	c.JSON(http.StatusOK, gin.H{
		"authenticated": token != "",
		"role":          session.RoleFromToken(token),
	})
}
