package auth

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimitByIP(rate.Limit(5), 10))
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/forgot-password", h.ForgotPassword)
		authGroup.POST("/reset-password", h.ResetPassword)
		authGroup.GET("/me", middleware.Authenticate(true), h.Me)
	}
}
