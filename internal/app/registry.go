package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/attendance"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/auth"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/billing"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/bootstrap"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/complaint"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/guard"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/messaging/kafka"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/patrol"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/payroll"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/rating"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/reports"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/resource"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shift"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/site"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/spend"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/training"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/user"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Shared infrastructure ---
	outboxRepo := kafka.NewOutboxRepository(db)
	resolver := resource.NewNameResolver(db)

	// --- Repositories ---
	authRepo := auth.NewRepository(db)

	// --- Services ---
	tokenService := auth.NewTokenServiceFromEnv()
	authService := auth.NewService(authRepo, tokenService, bootstrap.NewLogMailer(zap.L()))
	userService := user.NewService(db)
	siteService := site.NewService(db)
	shiftService := shift.NewService(db)
	billingService := billing.NewService(db, outboxRepo)
	complaintService := complaint.NewService(db, outboxRepo)
	reportsService := reports.NewService(db, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	siteHandler := site.NewHandler(siteService, resolver)
	guardHandler := guard.NewHandler(db)
	attendanceHandler := attendance.NewHandler(db)
	shiftHandler := shift.NewHandler(shiftService)
	patrolHandler := patrol.NewHandler(db)
	trainingHandler := training.NewHandler(db)
	payrollHandler := payroll.NewHandler(db)
	spendHandler := spend.NewHandler(db)
	billingHandler := billing.NewHandler(billingService)
	complaintHandler := complaint.NewHandler(complaintService)
	ratingHandler := rating.NewHandler(db)
	reportsHandler := reports.NewHandler(reportsService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	if rdb != nil {
		api.Use(middleware.Idempotency(rdb))
	}
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler)
		site.RegisterRoutes(api, siteHandler)
		guard.RegisterRoutes(api, guardHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		shift.RegisterRoutes(api, shiftHandler)
		patrol.RegisterRoutes(api, patrolHandler)
		training.RegisterRoutes(api, trainingHandler)
		payroll.RegisterRoutes(api, payrollHandler)
		spend.RegisterRoutes(api, spendHandler)
		billing.RegisterRoutes(api, "/billing", billingHandler)
		// Alias lama tetap hidup; mobile client versi awal memanggil /bills.
		billing.RegisterRoutes(api, "/bills", billingHandler)
		complaint.RegisterRoutes(api, complaintHandler)
		rating.RegisterRoutes(api, ratingHandler)
		reports.RegisterRoutes(api, reportsHandler)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return nil
}
