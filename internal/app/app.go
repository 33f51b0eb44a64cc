package app

import (
	"os"
	"time"

	"go-absensi/internal/middleware"
	"go-absensi/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultReportTimezone = "Asia/Jakarta"

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	// 1. Infrastruktur
	gormDB, err := connection.ConnectGORMWithRetry(
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
	logger.Info("database connection established")

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	// 2. Zona waktu laporan: semua format tanggal rekap memakai zona
	// ini, bukan zona server.
	tzName := os.Getenv("REPORT_TIMEZONE")
	if tzName == "" {
		tzName = defaultReportTimezone
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return err
	}
	logger.Info("report timezone loaded", zap.String("timezone", tzName))

	// 3. Middleware global
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// 4. Modul & routes
	return registerModules(router, db, gormDB, redisClient, loc)
}
