package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/joseph6369828419/online-saleserver/sms"
	"github.com/joseph6369828419/online-saleserver/store"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, users store.UserStore, sender sms.Sender, log *zap.Logger) {
	// account routes
	SetupAuthRoutes(r, users, log)

	// cart routes
	SetupCartRoutes(r, users, log)

	// address routes
	SetupAddressRoutes(r, users, log)

	// order routes
	SetupOrderRoutes(r, users, log)

	// outbound SMS
	SetupSMSRoutes(r, sender, log)

	r.GET("/health", func(c *gin.Context) {
		if err := users.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
