package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/joseph6369828419/online-saleserver/models"
	"github.com/joseph6369828419/online-saleserver/store"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Username    string `json:"username"`
	NewPassword string `json:"newPassword"`
}

// POST /api/register
//
// A duplicate username is reported with the same generic 400 as any other
// registration failure.
func Register(users store.UserStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Registration failed"})
			return
		}

		user := models.User{
			Name:     req.Name,
			Phone:    req.Phone,
			Email:    req.Email,
			Username: req.Username,
			Password: req.Password,
		}

		if err := users.CreateUser(c.Request.Context(), &user); err != nil {
			if errors.Is(err, store.ErrDuplicateUsername) {
				log.Warn("registration rejected, username taken", zap.String("username", req.Username))
			} else {
				log.Error("registration failed", zap.Error(err))
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": "Registration failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	}
}

// POST /api/login
//
// Password comparison is an exact string match against the stored value.
func Login(users store.UserStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}

		user, err := users.FindByUsername(c.Request.Context(), req.Username)
		if err != nil {
			if !errors.Is(err, store.ErrUserNotFound) {
				log.Error("login lookup failed", zap.Error(err))
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}
		if user.Password != req.Password {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Login successful",
			"username": user.Username,
			"cart":     user.Cart,
		})
	}
}

// PUT /api/forgot-password
//
// Overwrites the password unconditionally; knowing the username is the only
// required proof of identity.
func ForgotPassword(users store.UserStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ForgotPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to reset password"})
			return
		}

		err := users.UpdatePassword(c.Request.Context(), req.Username, req.NewPassword)
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if err != nil {
			log.Error("password reset failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to reset password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
	}
}
