package billing

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/domain"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
)

// RegisterRoutes dipanggil dua kali oleh registry: untuk /billing dan
// alias lama /bills.
func RegisterRoutes(r *gin.RouterGroup, prefix string, h *Handler) {
	bills := r.Group(prefix)
	bills.Use(middleware.Authenticate(true))
	{
		bills.GET("/soa", middleware.Allow(domain.RoleClient, domain.RoleAdmin, domain.RoleFinance, domain.RoleCRO), h.SOA)
		bills.GET("", middleware.Allow(domain.RoleAdmin, domain.RoleFinance), h.List)
		bills.POST("", middleware.Allow(domain.RoleAdmin, domain.RoleFinance), h.Create)
		bills.PUT("/:id", middleware.Allow(domain.RoleAdmin, domain.RoleFinance), h.Update)
		bills.DELETE("/:id", middleware.Allow(domain.RoleAdmin), h.Delete)
		bills.POST("/bulk", middleware.Allow(domain.RoleAdmin, domain.RoleFinance), h.BulkCreate)
	}
}
