package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/middleware"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/connection"
)

// BuildApp menyiapkan seluruh infrastruktur (Postgres, Redis) lalu
// mendaftarkan semua modul ke router. Redis opsional: tanpa REDIS_ADDR
// cache dan idempotency dimatikan, bukan gagal start.
func BuildApp(router *gin.Engine) error {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	return registerModules(router, db, rdb)
}
