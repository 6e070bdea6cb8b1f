package main

import (
	"log"
	"net/http"

	_ "todoapi/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"todoapi/internal/auth"
	"todoapi/internal/cache"
	"todoapi/internal/config"
	"todoapi/internal/db"
	"todoapi/internal/handler"
	"todoapi/internal/model"
	"todoapi/internal/repository"
	"todoapi/internal/router"
	"todoapi/internal/service"
)

// @title Todo API
// @version 1.0
// @description Multi-user to-do list API with email/password authentication and JWT bearer tokens.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Todo{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	todoRepo := repository.NewTodoRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authMW := auth.Middleware(jwtService, userRepo)

	// Services
	authService := service.NewAuthService(userRepo, jwtService)
	todoService := service.NewTodoService(todoRepo, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService)

	router.Register(e, authMW, authHandler, todoHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
