package app

import (
	"database/sql"
	"time"

	"go-absensi/internal/attendance"
	"go-absensi/internal/employee"
	"go-absensi/internal/holiday"
	"go-absensi/internal/messaging/kafka"
	"go-absensi/internal/recap"
	"go-absensi/internal/setting"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	loc *time.Location,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	recapRepo := recap.NewRepository(gormDB)
	settingRepo := setting.NewRepository(gormDB)

	// --- Services ---
	attendanceService := attendance.NewService(db, attendanceRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb)
	holidayService := holiday.NewService(db, holidayRepo)
	recapService := recap.NewService(recapRepo, loc)
	settingService := setting.NewService(db, settingRepo)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandlerWithRedis(attendanceService, rdb)
	employeeHandler := employee.NewHandler(employeeService)
	holidayHandler := holiday.NewHandler(holidayService)
	recapHandler := recap.NewHandler(recapService)
	settingHandler := setting.NewHandler(settingService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler, rdb)
		employee.RegisterRoutes(api, employeeHandler)
		holiday.RegisterRoutes(api, holidayHandler)
		recap.RegisterRoutes(api, recapHandler)
		setting.RegisterRoutes(api, settingHandler)
	}

	return nil
}
