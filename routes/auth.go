package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	userControllers "github.com/joseph6369828419/online-saleserver/controllers/user"
	"github.com/joseph6369828419/online-saleserver/store"
)

// SetupAuthRoutes registers registration, login and password reset.
func SetupAuthRoutes(r *gin.Engine, users store.UserStore, log *zap.Logger) {
	api := r.Group("/api")
	{
		api.POST("/register", userControllers.Register(users, log))             // POST /api/register
		api.POST("/login", userControllers.Login(users, log))                   // POST /api/login
		api.PUT("/forgot-password", userControllers.ForgotPassword(users, log)) // PUT /api/forgot-password
	}
}
