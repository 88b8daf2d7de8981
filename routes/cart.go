package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cartControllers "github.com/joseph6369828419/online-saleserver/controllers/cart"
	"github.com/joseph6369828419/online-saleserver/store"
)

// SetupCartRoutes registers the shopping cart endpoints.
func SetupCartRoutes(r *gin.Engine, users store.UserStore, log *zap.Logger) {
	api := r.Group("/api")
	{
		api.POST("/add-to-cart", cartControllers.AddToCart(users, log))                            // POST /api/add-to-cart
		api.GET("/cart/:username", cartControllers.GetCart(users, log))                            // GET /api/cart/:username
		api.POST("/cart/view", cartControllers.ViewCart(users, log))                               // POST /api/cart/view
		api.DELETE("/remove-from-cart/:username/:productId", cartControllers.RemoveFromCart(users, log)) // DELETE /api/remove-from-cart/:username/:productId
	}
}
