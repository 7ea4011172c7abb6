package reports

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/domain"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	reports := r.Group("/reports")
	reports.Use(middleware.Authenticate(true))
	{
		reports.GET("/summary",
			middleware.Allow(domain.RoleClient, domain.RoleAdmin, domain.RoleOfficer, domain.RoleCRO, domain.RoleFinance),
			h.Summary)
	}
}
