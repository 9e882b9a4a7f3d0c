package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"

	"gin-inventory/constants"
	"gin-inventory/dto"
	"gin-inventory/services"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var input dto.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	user, err := c.service.Register(input.Username, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrPasswordTooShort) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrPasswordTooShort})
			return
		}
		if errors.Is(err, services.ErrDuplicateUser) {
			ctx.JSON(http.StatusConflict, gin.H{"error": constants.ErrDuplicateUser})
			return
		}
		log.Printf("Register error (request %s): %v", ctx.GetString("requestID"), err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "Registration successful",
		UserID:  user.ID,
	})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	user, err := c.service.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrInvalidCredentials})
			return
		}
		log.Printf("Login error (request %s): %v", ctx.GetString("requestID"), err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	setAuthCookie(ctx, user.ID)

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		UserID:  user.ID,
	})
}

func (c *AuthController) Logout(ctx *gin.Context) {
	clearAuthCookie(ctx)
	ctx.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func setAuthCookie(ctx *gin.Context, userID uint) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(
		constants.AuthCookieName,
		strconv.FormatUint(uint64(userID), 10),
		constants.AuthCookieMaxAge,
		"/",
		"",
		isProduction(),
		true,
	)
}

func clearAuthCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(constants.AuthCookieName, "", -1, "/", "", isProduction(), true)
}

func isProduction() bool {
	return os.Getenv("ENV") == "prod"
}
