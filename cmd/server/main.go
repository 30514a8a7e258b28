package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	_ "noticeboard/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"noticeboard/internal/auth"
	"noticeboard/internal/cache"
	"noticeboard/internal/config"
	"noticeboard/internal/db"
	"noticeboard/internal/handler"
	"noticeboard/internal/model"
	"noticeboard/internal/repository"
	"noticeboard/internal/router"
	"noticeboard/internal/service"
)

// @title Noticeboard Admin API
// @version 1.0
// @description Administrative API for site announcements and events with JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Announcement{},
			&model.Event{},
			&model.Admin{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Admin{},
		&model.Announcement{},
		&model.Event{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(gormDB)
	announcementRepo := repository.NewAnnouncementRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(adminRepo, jwtService)
	announcementService := service.NewAnnouncementService(announcementRepo, cacheClient)
	eventService := service.NewEventService(eventRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.SetupToken)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)
	eventHandler := handler.NewEventHandler(eventService)

	// Register routes
	router.Register(
		e,
		cfg,
		adminRepo,
		authHandler,
		announcementHandler,
		eventHandler,
	)

	// Log swagger full path
	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		if strings.HasPrefix(cfg.SwaggerHost, "http://") || strings.HasPrefix(cfg.SwaggerHost, "https://") {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
