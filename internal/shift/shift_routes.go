package shift

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/domain"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	shifts := r.Group("/shifts")
	shifts.Use(middleware.Authenticate(true))
	{
		shifts.GET("", h.LatestDayBreakdown)
		shifts.GET("/latest", h.LatestDayTotal)
		shifts.GET("/list/all", middleware.Allow(domain.RoleAdmin, domain.RoleOfficer), h.ListAll)
		shifts.POST("", middleware.Allow(domain.RoleAdmin, domain.RoleOfficer), h.Create)
		shifts.POST("/bulk", middleware.Allow(domain.RoleAdmin, domain.RoleOfficer), h.BulkCreate)
	}
}
