package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	addressControllers "github.com/joseph6369828419/online-saleserver/controllers/address"
	"github.com/joseph6369828419/online-saleserver/store"
)

// SetupAddressRoutes registers the address book endpoints, including the
// purchase confirmation that overwrites the whole address array.
func SetupAddressRoutes(r *gin.Engine, users store.UserStore, log *zap.Logger) {
	api := r.Group("/api")
	{
		api.GET("/get-addresses/:username", addressControllers.GetAddresses(users, log))          // GET /api/get-addresses/:username
		api.POST("/add-address/:username", addressControllers.AddAddress(users, log))             // POST /api/add-address/:username
		api.PUT("/update-address/:username", addressControllers.UpdateAddress(users, log))        // PUT /api/update-address/:username
		api.DELETE("/delete-address/:username/:index", addressControllers.DeleteAddress(users, log)) // DELETE /api/delete-address/:username/:index
		api.POST("/purchase", addressControllers.Purchase(users, log))                            // POST /api/purchase
	}
}
