package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/trailforge/parks-catalog/internal/auth"
	"github.com/trailforge/parks-catalog/internal/config"
	"github.com/trailforge/parks-catalog/internal/database"
	"github.com/trailforge/parks-catalog/internal/handler"
	"github.com/trailforge/parks-catalog/internal/middleware"
	"github.com/trailforge/parks-catalog/internal/repository"
	"github.com/trailforge/parks-catalog/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate schema: %v", err)
	}

	parkRepo := repository.NewParkRepo(db)
	trailRepo := repository.NewTrailRepo(db)
	userRepo := repository.NewUserRepo(db)

	authSvc := auth.NewService(userRepo, cfg.JWTSecret, cfg.TokenTTLDays, cfg.BcryptCost)
	if err := authSvc.EnsureAdmin(ctx, cfg.AdminUser, cfg.AdminPass); err != nil {
		log.Fatalf("seed admin account: %v", err)
	}

	e := echo.New()

	// Distributed rate limiting; the API keeps serving without Redis.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable, rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.Register(e,
		handler.NewParkHandler(parkRepo),
		handler.NewTrailHandler(trailRepo),
		handler.NewUserHandler(authSvc),
		cfg.JWTSecret,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
