package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/joseph6369828419/online-saleserver/models"
	"github.com/joseph6369828419/online-saleserver/store"
)

type AddToCartRequest struct {
	Username string          `json:"username" binding:"required"`
	Product  models.CartItem `json:"product"`
}

type ViewCartRequest struct {
	Username string `json:"username"`
}

// POST /api/add-to-cart
//
// Adding the same product twice appends two entries; nothing merges or
// increments quantities.
func AddToCart(users store.UserStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		err := users.PushCartItem(c.Request.Context(), req.Username, req.Product)
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if err != nil {
			log.Error("add to cart failed", zap.Error(err), zap.String("username", req.Username))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product added to cart successfully"})
	}
}

// GET /api/cart/:username
func GetCart(users store.UserStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		user, err := users.FindByUsername(c.Request.Context(), username)
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if err != nil {
			log.Error("cart fetch failed", zap.Error(err), zap.String("username", username))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": user.Cart})
	}
}

// POST /api/cart/view
//
// Body-driven twin of GET /api/cart/:username. Returns the same {cart}
// structure but reports every failure, unknown user included, as 400.
func ViewCart(users store.UserStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ViewCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to retrieve cart"})
			return
		}

		user, err := users.FindByUsername(c.Request.Context(), req.Username)
		if err != nil {
			if !errors.Is(err, store.ErrUserNotFound) {
				log.Error("cart view failed", zap.Error(err), zap.String("username", req.Username))
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to retrieve cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart": user.Cart})
	}
}

// DELETE /api/remove-from-cart/:username/:productId
//
// Pulls the cart entry by its generated id. A pull that matches nothing is
// still a success; the id here is the entry's own id, not the catalog
// product id.
func RemoveFromCart(users store.UserStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		itemID, err := primitive.ObjectIDFromHex(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove product from cart"})
			return
		}

		err = users.PullCartItem(c.Request.Context(), username, itemID)
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if err != nil {
			log.Error("cart removal failed", zap.Error(err), zap.String("username", username))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove product from cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart successfully"})
	}
}
