package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/attendance"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/auth"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/billing"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/complaint"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/guard"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/messaging/kafka"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/patrol"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/payroll"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/rating"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/connection"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shift"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/site"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/spend"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/training"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/user"
)

// Migrasi dijalankan operator secara eksplisit, terpisah dari start API.
// AutoMigrate idempotent: aman diulang pada schema yang sudah ada.
func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

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
		logger.Fatal("database connection failed", zap.Error(err))
	}

	err = db.AutoMigrate(
		&user.User{},
		&auth.PasswordResetToken{},
		&site.Site{},
		&guard.Guard{},
		&shift.Shift{},
		&attendance.Attendance{},
		&patrol.NightRound{},
		&training.TrainingReport{},
		&payroll.SalaryDisbursement{},
		&spend.Spend{},
		&billing.Bill{},
		&complaint.Complaint{},
		&rating.Rating{},
		&kafka.OutboxEvent{},
	)
	if err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	logger.Info("migration completed")
}
