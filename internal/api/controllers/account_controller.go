package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

func (a *AccountController) Signup(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username & password required"})
		return
	}

	if err := a.accountService.Signup(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, utils.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username & password required"})
		case errors.Is(err, utils.ErrUserExists):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Signup failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signup successful"})
}

func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	account, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		}
		return
	}

	// The stored record goes back as-is, password included.
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": account})
}

func (a *AccountController) Profile(c *gin.Context) {
	account, err := a.accountService.Profile(c.Request.Context(), c.Param("username"))
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch profile"})
		}
		return
	}

	c.JSON(http.StatusOK, account)
}
