package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadp "credfacil-backend/internal/adapter/http"
	"credfacil-backend/internal/adapter/middleware"
	"credfacil-backend/internal/adapter/repository/mysql"
	"credfacil-backend/internal/adapter/session"
	"credfacil-backend/internal/config"
	"credfacil-backend/internal/infrastructure/cache"
	"credfacil-backend/internal/infrastructure/db"
	adminuc "credfacil-backend/internal/usecase/admin"
	flowuc "credfacil-backend/internal/usecase/flow"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	settingsRepo := mysql.NewSettingsRepository(gdb)
	appRepo := mysql.NewApplicationRepository(gdb)
	sessions := session.NewRedisStore(rdb, time.Duration(cfg.SessionTTLSecs)*time.Second)

	flowUC := flowuc.NewUsecase(settingsRepo, appRepo, sessions)
	adminUC := adminuc.NewUsecase(settingsRepo, appRepo)

	h := httpadp.NewHandler()
	flowH := httpadp.NewFlowHandler(flowUC)
	adminH := httpadp.NewAdminHandler(adminUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// routes
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	fl := e.Group("/api/v1/flow", middleware.RequireUser())
	fl.POST("/session", flowH.StartSession)
	fl.GET("/session", flowH.CurrentSession)
	fl.POST("/personal-data", flowH.SubmitPersonalData, idemp)
	fl.POST("/bank-data", flowH.SubmitBankData, idemp)
	fl.GET("/payment", flowH.PaymentInstructions)

	ad := e.Group("/api/v1/admin", middleware.RequireUser(), middleware.RequireAdmin())
	ad.GET("/settings", adminH.GetSettings)
	ad.PUT("/settings", adminH.SaveSettings)
	ad.GET("/applications", adminH.ListApplications)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
