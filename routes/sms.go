package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	smsControllers "github.com/joseph6369828419/online-saleserver/controllers/sms"
	"github.com/joseph6369828419/online-saleserver/sms"
)

// SetupSMSRoutes registers the outbound notification endpoint.
func SetupSMSRoutes(r *gin.Engine, sender sms.Sender, log *zap.Logger) {
	r.POST("/send-message", smsControllers.SendMessage(sender, log)) // POST /send-message
}
