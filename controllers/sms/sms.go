package smsControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/joseph6369828419/online-saleserver/sms"
)

type SendMessageRequest struct {
	MessageBody string `json:"messageBody"`
	ToNumber    string `json:"toNumber"`
}

// POST /send-message
//
// Fire-and-forget dispatch through the provider; nothing in the order or
// cart flow triggers this automatically.
func SendMessage(sender sms.Sender, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusInternalServerError, "Failed to send message")
			return
		}

		sid, err := sender.Send(req.ToNumber, req.MessageBody)
		if err != nil {
			log.Error("message dispatch failed", zap.Error(err), zap.String("to", req.ToNumber))
			c.String(http.StatusInternalServerError, "Failed to send message")
			return
		}

		log.Info("message sent", zap.String("sid", sid), zap.String("to", req.ToNumber))
		c.String(http.StatusOK, "Message sent successfully!")
	}
}
