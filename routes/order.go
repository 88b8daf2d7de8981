package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	orderControllers "github.com/joseph6369828419/online-saleserver/controllers/order"
	"github.com/joseph6369828419/online-saleserver/store"
)

// SetupOrderRoutes registers order placement, listing and cancellation.
func SetupOrderRoutes(r *gin.Engine, users store.UserStore, log *zap.Logger) {
	api := r.Group("/api")
	{
		api.POST("/orders", orderControllers.PlaceOrder(users, log))                               // POST /api/orders
		api.GET("/orders", orderControllers.GetOrders(users, log))                                 // GET /api/orders?username=
		api.DELETE("/delete-orders/:username/:orderId", orderControllers.CancelOrder(users, log))  // DELETE /api/delete-orders/:username/:orderId
	}
}
