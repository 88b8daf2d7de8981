package addressControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/joseph6369828419/online-saleserver/models"
	"github.com/joseph6369828419/online-saleserver/store"
)

type PurchaseRequest struct {
	Username    string         `json:"username" binding:"required"`
	AddressData models.Address `json:"addressData"`
}

// GET /api/get-addresses/:username
//
// An unknown user yields an empty list, not a 404.
func GetAddresses(users store.UserStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		addresses, err := users.Addresses(c.Request.Context(), username)
		if err != nil {
			log.Error("address fetch failed", zap.Error(err), zap.String("username", username))
			c.String(http.StatusInternalServerError, "Server Error")
			return
		}

		c.JSON(http.StatusOK, addresses)
	}
}

// POST /api/add-address/:username
func AddAddress(users store.UserStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		var addr models.Address
		if err := c.ShouldBindJSON(&addr); err != nil {
			c.String(http.StatusInternalServerError, "Server Error")
			return
		}

		if err := users.PushAddress(c.Request.Context(), username, addr); err != nil {
			log.Error("address add failed", zap.Error(err), zap.String("username", username))
			c.String(http.StatusInternalServerError, "Server Error")
			return
		}

		c.String(http.StatusCreated, "Address added")
	}
}

// PUT /api/update-address/:username
//
// Replaces the entry whose _id matches the body's _id. No match is still
// reported as success.
func UpdateAddress(users store.UserStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		var addr models.Address
		if err := c.ShouldBindJSON(&addr); err != nil {
			c.String(http.StatusInternalServerError, "Server Error")
			return
		}

		if err := users.SetAddress(c.Request.Context(), username, addr); err != nil {
			log.Error("address update failed", zap.Error(err), zap.String("username", username))
			c.String(http.StatusInternalServerError, "Server Error")
			return
		}

		c.String(http.StatusOK, "Address updated")
	}
}

// DELETE /api/delete-address/:username/:index
//
// The path segment is the address entry's id. A malformed id maps to 500
// here, unlike order cancellation which validates up front.
func DeleteAddress(users store.UserStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		addrID, err := primitive.ObjectIDFromHex(c.Param("index"))
		if err != nil {
			c.String(http.StatusInternalServerError, "Server Error")
			return
		}

		if err := users.PullAddress(c.Request.Context(), username, addrID); err != nil {
			log.Error("address delete failed", zap.Error(err), zap.String("username", username))
			c.String(http.StatusInternalServerError, "Server Error")
			return
		}

		c.String(http.StatusOK, "Address deleted")
	}
}

// POST /api/purchase
//
// Destructively replaces the whole address book with the single confirmed
// address and returns the updated user document.
func Purchase(users store.UserStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PurchaseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		user, err := users.ReplaceAddresses(c.Request.Context(), req.Username, req.AddressData)
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if err != nil {
			log.Error("purchase confirmation failed", zap.Error(err), zap.String("username", req.Username))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing purchase"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Purchase confirmed", "user": user})
	}
}
