package main

import (
	"context"
	"log"

	"affiliate-hub/config"
	_ "affiliate-hub/docs"
	"affiliate-hub/middleware"
	"affiliate-hub/repositories"
	"affiliate-hub/routes"
	"affiliate-hub/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// @title Affiliate Hub API
// @version 1.0
// @description Storefront, back office and product sync API for the affiliate marketing site.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	var logger *zap.Logger
	var err error
	if cfg.AppEnv == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	cache := config.ConnectRedis(cfg)

	if err := seedAdmin(cfg, db); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(middleware.CORSMiddleware(cfg))
	routes.SetupRoutes(router, cfg, db, cache, logger)

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedAdmin guarantees the back office is reachable on a fresh install.
func seedAdmin(cfg *config.Config, db *pgxpool.Pool) error {
	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	return repositories.NewUserRepository(db).EnsureAdmin(context.Background(), cfg.AdminUsername, hash)
}
