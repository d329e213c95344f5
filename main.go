package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Juggernaut7/Task-Tidy/config"
	"github.com/Juggernaut7/Task-Tidy/middleware"
	"github.com/Juggernaut7/Task-Tidy/routes"
	"github.com/Juggernaut7/Task-Tidy/utils"
)

func main() {
	if err := config.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer config.Logger.Sync()

	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if conf.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	utils.InitJWT(conf.JWTSecret)

	if err := config.InitDB(conf); err != nil {
		log.Fatalf("failed to init database: %v", err)
	}

	if err := config.InitRedis(conf); err != nil {
		// Redis backs caching and rate limiting only; run degraded without it.
		config.Logger.Warnw("redis unavailable, continuing without cache", "error", err)
		config.RedisClient = nil
	}

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	middleware.SetupMiddleware(r, conf.FrontendURL)
	routes.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		config.Logger.Infow("server starting", "port", conf.ServerPort, "env", conf.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		config.Logger.Errorw("forced shutdown", "error", err)
	}

	config.Logger.Info("server exited")
}
