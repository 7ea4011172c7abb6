package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/app"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunWorker(); err != nil {
		logger.Fatal("worker failed", zap.Error(err))
	}
}
