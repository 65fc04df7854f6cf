// @title        Portfolio API
// @version      1.0
// @description  REST service backing the portfolio site: contact messages and gallery/blog posts with likes and comments.
// @BasePath     /

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"portfolio-backend/bootstrap"
	"portfolio-backend/configs"
	"portfolio-backend/database"
	_ "portfolio-backend/docs"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/logging"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/routes"
)

func main() {
	logging.Setup()

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using system environment")
	}
	cfg := configs.Load()

	db, err := database.Connect(cfg.MongoURI, cfg.DBName)
	if err != nil {
		logging.Fatal("invalid mongo configuration", "error", err)
	}

	// The driver dials lazily; ping to learn whether the store is reachable.
	// Outside production an unreachable store is fatal. In production the
	// service starts anyway: /health stays green, /api/status reports
	// disconnected, and the driver reconnects once Mongo is back.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.Ping(ctx); err != nil {
		if cfg.ExitOnDBError {
			cancel()
			logging.Fatal("mongodb unreachable", "uri", cfg.MongoURI, "error", err)
		}
		slog.Warn("mongodb unreachable at startup, continuing", "error", err)
	} else {
		slog.Info("connected to mongodb", "database", cfg.DBName)
		if err := bootstrap.EnsureIndexes(ctx, db.DB); err != nil {
			slog.Warn("ensure indexes failed", "error", err)
		}
	}
	cancel()

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Deps{
		Messages: repository.NewMongoMessageRepository(db.DB),
		Posts:    repository.NewMongoPostRepository(db.DB),
		Health:   &handlers.HealthHandler{DB: db, Cfg: cfg},
	})

	go func() {
		slog.Info("listening", "port", cfg.Port, "env", cfg.Env)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logging.Fatal("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown", "error", err)
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := db.Disconnect(shutdownCtx); err != nil {
		slog.Error("mongo disconnect", "error", err)
	}
}
