package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/joseph6369828419/online-saleserver/models"
	"github.com/joseph6369828419/online-saleserver/store"
)

type PlaceOrderRequest struct {
	Username string        `json:"username"`
	Order    *models.Order `json:"order"`
}

// POST /api/orders
//
// Appending the order and emptying the cart are committed as one document
// save; a failed save persists neither.
func PlaceOrder(users store.UserStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Order == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username and order details are required."})
			return
		}

		err := users.PlaceOrder(c.Request.Context(), req.Username, req.Order)
		if errors.Is(err, store.ErrInvalidOrder) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username and order details are required."})
			return
		}
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		if err != nil {
			log.Error("order placement failed", zap.Error(err), zap.String("username", req.Username))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully.", "order": req.Order})
	}
}

// GET /api/orders?username=
func GetOrders(users store.UserStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Query("username")

		user, err := users.FindByUsername(c.Request.Context(), username)
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if err != nil {
			log.Error("order fetch failed", zap.Error(err), zap.String("username", username))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": user.Orders})
	}
}

// DELETE /api/delete-orders/:username/:orderId
//
// The id is validated up front, the order is pulled atomically, and the
// document is re-checked afterwards: an order still present after the pull
// is reported as a server failure, never silently ignored.
func CancelOrder(users store.UserStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		orderID, err := primitive.ObjectIDFromHex(c.Param("orderId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID format."})
			return
		}

		err = users.CancelOrder(c.Request.Context(), username, orderID)
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		if errors.Is(err, store.ErrOrderNotRemoved) {
			log.Error("order still present after pull",
				zap.String("username", username), zap.String("order_id", orderID.Hex()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to cancel the order."})
			return
		}
		if err != nil {
			log.Error("order cancellation failed", zap.Error(err), zap.String("username", username))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error. Please try again later."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order canceled successfully."})
	}
}
